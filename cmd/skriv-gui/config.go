package main

import (
	"fyne.io/fyne/v2"

	"github.com/oukeidos/skriv/internal/logger"
)

type AppConfig struct {
	LastDir      string
	WordWrap     bool
	WindowWidth  int
	WindowHeight int
	FontSize     float32
}

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
	minWindowWidth      = 320
	minWindowHeight     = 240
	maxWindowWidth      = 8192
	maxWindowHeight     = 8192

	defaultFontSize = 14
	minFontSize     = 8
	maxFontSize     = 48
)

func clampInt(v, lo, hi int) (int, bool) {
	switch {
	case v < lo:
		return lo, true
	case v > hi:
		return hi, true
	}
	return v, false
}

func loadConfig(prefs fyne.Preferences) AppConfig {
	cfg := AppConfig{
		WordWrap:     true,
		WindowWidth:  defaultWindowWidth,
		WindowHeight: defaultWindowHeight,
		FontSize:     defaultFontSize,
	}
	if prefs == nil {
		return cfg
	}

	cfg.LastDir = prefs.String("LastDir")
	cfg.WordWrap = prefs.BoolWithFallback("WordWrap", true)

	cfg.WindowWidth = prefs.IntWithFallback("WindowWidth", defaultWindowWidth)
	if clamped, changed := clampInt(cfg.WindowWidth, minWindowWidth, maxWindowWidth); changed {
		logger.Warn("Window width clamped", "requested", cfg.WindowWidth, "effective", clamped)
		cfg.WindowWidth = clamped
		prefs.SetInt("WindowWidth", clamped)
	}
	cfg.WindowHeight = prefs.IntWithFallback("WindowHeight", defaultWindowHeight)
	if clamped, changed := clampInt(cfg.WindowHeight, minWindowHeight, maxWindowHeight); changed {
		logger.Warn("Window height clamped", "requested", cfg.WindowHeight, "effective", clamped)
		cfg.WindowHeight = clamped
		prefs.SetInt("WindowHeight", clamped)
	}

	size := prefs.FloatWithFallback("FontSize", defaultFontSize)
	if size < minFontSize || size > maxFontSize {
		logger.Warn("Font size out of range; using default", "requested", size, "effective", defaultFontSize)
		size = defaultFontSize
		prefs.SetFloat("FontSize", size)
	}
	cfg.FontSize = float32(size)
	return cfg
}

func saveConfig(prefs fyne.Preferences, cfg AppConfig) {
	if prefs == nil {
		return
	}
	prefs.SetString("LastDir", cfg.LastDir)
	prefs.SetBool("WordWrap", cfg.WordWrap)
	prefs.SetInt("WindowWidth", cfg.WindowWidth)
	prefs.SetInt("WindowHeight", cfg.WindowHeight)
	prefs.SetFloat("FontSize", float64(cfg.FontSize))
}
