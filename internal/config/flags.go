// internal/config/flags.go
package config

import (
	"flag"
	"fmt"

	"github.com/bethropolis/editbox/internal/logger"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath  string
	Version         bool
	LogLevel        string
	LogFilePath     string
	DoubleClickTime float64
	HistoryLimit    int
	SystemClipboard bool
	ThemeFile       string
	EnableTags      string
	DisableTags     string
	EnablePkgs      string
	DisablePkgs     string
	EnableFiles     string
	DisableFiles    string
	DebugLog        bool
}

// NewFlags registers every flag on a new FlagSet named name.
func NewFlags(name string) *Flags {
	f := &Flags{set: flag.NewFlagSet(name, flag.ContinueOnError)}
	fs := f.set

	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default <user config dir>/%s/%s)", AppName, DefaultConfigFileName))
	fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr)")
	fs.Float64Var(&f.DoubleClickTime, "double-click-time", 0, "Seconds between clicks that still count as a double click")
	fs.IntVar(&f.HistoryLimit, "history-limit", 0, "Maximum undo depth (0 keeps everything)")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", SystemClipboard, "Use the system clipboard for copy and paste")
	fs.StringVar(&f.ThemeFile, "theme", "", "Path to a TOML theme file")
	fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of tags to enable")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of tags to disable")
	fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to enable")
	fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable")
	fs.StringVar(&f.EnableFiles, "log-files", "", "Comma-separated list of files to enable")
	fs.StringVar(&f.DisableFiles, "log-disable-files", "", "Comma-separated list of files to disable")
	fs.BoolVar(&f.DebugLog, "debug-log", false, "Trace logger filter decisions to stderr")
	return f
}

// Parse parses args and returns the remaining positional arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// ApplyOverrides copies every flag that was set explicitly onto cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "double-click-time":
			if f.DoubleClickTime > 0 {
				cfg.Editor.DoubleClickTime = f.DoubleClickTime
			}
		case "history-limit":
			if f.HistoryLimit >= 0 {
				cfg.Editor.HistoryLimit = f.HistoryLimit
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "theme":
			cfg.Editor.ThemeFile = f.ThemeFile
		case "log-tags":
			cfg.Logger.EnabledTags = logger.SplitList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = logger.SplitList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = logger.SplitList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = logger.SplitList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = logger.SplitList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = logger.SplitList(f.DisableFiles)
		}
	})
}
