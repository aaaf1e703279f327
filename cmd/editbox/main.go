// cmd/editbox/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Standard log for errors before the logger is ready
	"os"

	"github.com/bethropolis/editbox/internal/app"
	"github.com/bethropolis/editbox/internal/config"
	"github.com/bethropolis/editbox/internal/logger"
)

func main() {
	flags := config.NewFlags(config.AppName)
	args, err := flags.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	cfg, undecoded, loadErr := config.Load(flags.ConfigFilePath, flags)

	logger.SetDebugFilter(flags.DebugLog)
	if err := logger.Init(cfg.Logger); err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	if loadErr != nil {
		logger.Warnf("Config: %v (using defaults)", loadErr)
	}
	if len(undecoded) > 0 {
		logger.Warnf("Config: unrecognized keys: %v", undecoded)
	}

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}
	logger.Infof("Starting %s %s, file %q", config.AppName, config.Version, filePath)

	editboxApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		logger.Close()
		os.Exit(1)
	}

	if err := editboxApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		logger.Close()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
