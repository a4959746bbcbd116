package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestClampInt(t *testing.T) {
	cases := []struct {
		v, want int
		changed bool
	}{
		{v: 100, want: minWindowWidth, changed: true},
		{v: 900, want: 900},
		{v: 99999, want: maxWindowWidth, changed: true},
	}
	for _, tc := range cases {
		got, changed := clampInt(tc.v, minWindowWidth, maxWindowWidth)
		if got != tc.want || changed != tc.changed {
			t.Fatalf("clampInt(%d) = %d, %v; want %d, %v", tc.v, got, changed, tc.want, tc.changed)
		}
	}
}

func TestLoadConfig_DefaultsAndClamping(t *testing.T) {
	prefs := test.NewTempApp(t).Preferences()

	cfg := loadConfig(prefs)
	if !cfg.WordWrap || cfg.WindowWidth != defaultWindowWidth || cfg.FontSize != defaultFontSize {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	prefs.SetInt("WindowWidth", 10)
	prefs.SetInt("WindowHeight", 100000)
	prefs.SetFloat("FontSize", 200)
	cfg = loadConfig(prefs)
	if cfg.WindowWidth != minWindowWidth || cfg.WindowHeight != maxWindowHeight || cfg.FontSize != defaultFontSize {
		t.Fatalf("expected clamped values, got %+v", cfg)
	}
	if prefs.Int("WindowWidth") != minWindowWidth {
		t.Fatalf("clamped width not persisted: %d", prefs.Int("WindowWidth"))
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	prefs := test.NewTempApp(t).Preferences()
	want := AppConfig{LastDir: "/docs", WordWrap: false, WindowWidth: 1024, WindowHeight: 700, FontSize: 16}
	saveConfig(prefs, want)
	if got := loadConfig(prefs); got != want {
		t.Fatalf("loadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadConfig_NilPreferences(t *testing.T) {
	cfg := loadConfig(nil)
	if cfg.WindowHeight != defaultWindowHeight {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
