// Package textstats computes the document statistics shown in the status bar.
//
// Letters are Unicode code points. Line terminators are never counted, so a
// file has the same letter count with CRLF or LF endings.
package textstats

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Counts holds one snapshot of all statistics.
type Counts struct {
	LettersInclSpaces int `json:"letters_incl_spaces" yaml:"letters_incl_spaces"`
	LettersExclSpaces int `json:"letters_excl_spaces" yaml:"letters_excl_spaces"`
	Words             int `json:"words" yaml:"words"`
	Rows              int `json:"rows" yaml:"rows"`
	// Graphemes is not shown in the status bar.
	Graphemes int `json:"graphemes" yaml:"graphemes"`
}

// Compute returns all four counts for text.
func Compute(text string) Counts {
	return Counts{
		LettersInclSpaces: CountLettersInclSpaces(text),
		LettersExclSpaces: CountLettersExclSpaces(text),
		Words:             CountWords(text),
		Rows:              CountRows(text),
		Graphemes:         CountGraphemes(text),
	}
}

func isLineBreak(r rune) bool { return r == '\r' || r == '\n' }

// isWordDelimiter matches the ASCII space and line terminators only.
// Tabs and other whitespace are deliberately part of words and letters.
func isWordDelimiter(r rune) bool { return r == ' ' || isLineBreak(r) }

func without(text string, drop func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if drop(r) {
			return -1
		}
		return r
	}, text)
}

// CountLettersInclSpaces counts every character except '\r' and '\n'.
func CountLettersInclSpaces(text string) int {
	return utf8.RuneCountInString(without(text, isLineBreak))
}

// CountLettersExclSpaces is CountLettersInclSpaces without ASCII spaces.
func CountLettersExclSpaces(text string) int {
	return utf8.RuneCountInString(without(text, isWordDelimiter))
}

// CountGraphemes counts user-perceived characters, skipping clusters made only
// of line terminators. "e\u0301" is one grapheme but two letters.
func CountGraphemes(text string) int {
	n := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		if strings.TrimFunc(g.Str(), isLineBreak) != "" {
			n++
		}
	}
	return n
}

// CountWords counts the non-empty fragments between spaces and line terminators.
func CountWords(text string) int {
	return len(strings.FieldsFunc(text, isWordDelimiter))
}

// CountRows is the number of '\n' characters plus one. A trailing newline
// therefore opens a new, empty row.
func CountRows(text string) int {
	return strings.Count(text, "\n") + 1
}
