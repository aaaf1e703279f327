package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
enabled_tags = ["click", "history"]

[editor]
double_click_time = 0.3
history_limit = 50
theme_file = "dark.toml"
word_wrap = true
`)

	cfg, undecoded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := EditorConfig{
		DoubleClickTime: 0.3,
		HistoryLimit:    50,
		SystemClipboard: true,
		ThemeFile:       "dark.toml",
	}
	if diff := cmp.Diff(want, cfg.Editor); diff != "" {
		t.Errorf("Editor config (-want +got):\n%s", diff)
	}
	if cfg.Logger.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.Logger.LogLevel)
	}
	if diff := cmp.Diff([]string{"click", "history"}, cfg.Logger.EnabledTags); diff != "" {
		t.Errorf("EnabledTags (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"editor.word_wrap"}, undecoded); diff != "" {
		t.Errorf("undecoded keys (-want +got):\n%s", diff)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "loud"

[editor]
double_click_time = -1.0
history_limit = -3
`)

	cfg, _, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defaults := NewDefaultConfig()
	if diff := cmp.Diff(defaults.Editor, cfg.Editor); diff != "" {
		t.Errorf("Editor config (-want +got):\n%s", diff)
	}
	if cfg.Logger.LogLevel != defaults.Logger.LogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.Logger.LogLevel, defaults.Logger.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, undecoded, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(undecoded) != 0 {
		t.Errorf("undecoded = %v, want none", undecoded)
	}
	if diff := cmp.Diff(NewDefaultConfig().Editor, cfg.Editor); diff != "" {
		t.Errorf("Editor config (-want +got):\n%s", diff)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[editor\nhistory_limit = ")

	cfg, _, err := Load(path, nil)
	if err == nil {
		t.Fatal("Load() error = nil for malformed TOML")
	}
	if cfg == nil || cfg.Editor.DoubleClickTime != DefaultDoubleClickTime {
		t.Errorf("Load() did not fall back to defaults: %+v", cfg)
	}
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, `
[editor]
history_limit = 50
double_click_time = 0.3
`)

	flags := NewFlags("editbox")
	args, err := flags.Parse([]string{
		"-history-limit", "5",
		"-system-clipboard=false",
		"-log-tags", "core, history",
		"-loglevel", "warn",
		"notes.txt",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff([]string{"notes.txt"}, args); diff != "" {
		t.Errorf("positional args (-want +got):\n%s", diff)
	}

	cfg, _, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Editor.HistoryLimit != 5 {
		t.Errorf("HistoryLimit = %d, want 5", cfg.Editor.HistoryLimit)
	}
	if cfg.Editor.DoubleClickTime != 0.3 {
		t.Errorf("DoubleClickTime = %v, want file value 0.3", cfg.Editor.DoubleClickTime)
	}
	if cfg.Editor.SystemClipboard {
		t.Error("SystemClipboard = true, want false")
	}
	if cfg.Logger.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.Logger.LogLevel)
	}
	if diff := cmp.Diff([]string{"core", "history"}, cfg.Logger.EnabledTags); diff != "" {
		t.Errorf("EnabledTags (-want +got):\n%s", diff)
	}
}

func TestFlagsUnknown(t *testing.T) {
	flags := NewFlags("editbox")
	flags.set.SetOutput(io.Discard)
	if _, err := flags.Parse([]string{"-no-such-flag"}); err == nil {
		t.Error("Parse() error = nil for unknown flag")
	}
}
