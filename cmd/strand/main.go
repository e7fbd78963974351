// cmd/strand/main.go
package main

import (
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/strandtext/strand/internal/app"
	"github.com/strandtext/strand/internal/config"
	"github.com/strandtext/strand/internal/logger"
)

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}

	logger.Infof("starting %s", config.AppName)
	if filePath != "" {
		logger.Debugf("file path specified: %s", filePath)
	} else {
		logger.Debugf("no file specified, starting empty")
	}

	application, err := app.New(cfg, filePath)
	if err != nil {
		logger.Errorf("error initializing application: %v", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		logger.Errorf("application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished", config.AppName)
}
