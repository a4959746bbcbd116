// Package document tracks the identity and saved state of the single open
// text document and enforces the save-before-discard policy.
//
// Operations that could throw away unsaved edits (new, open, exit, close and
// drop-replace) first ask a Prompter whether to save, discard or cancel.
// Every operation is all-or-nothing: a cancelled or failed operation leaves
// the document exactly as it was.
package document
