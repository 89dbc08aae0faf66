package main

import (
	"flag"
	"os"

	"github.com/Santy1924/Online-Course-Platform/backup-tool/internal/recovery"
)

func main() {
	var (
		configPath string
		target     string
		debug      bool
	)

	flag.StringVar(&configPath, "config", "", "Path to restore configuration file")
	flag.StringVar(&target, "backup", "latest", "Backup directory name or 'latest'")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	cfg := recovery.DefaultRestoreConfig()
	if configPath != "" {
		loaded, err := recovery.LoadRestoreConfig(configPath)
		if err != nil {
			os.Stderr.WriteString("failed to load restore config: " + err.Error() + "\n")
			os.Exit(1)
		}
		cfg = *loaded
	}

	logger := recovery.NewRestoreLogger(cfg.LogFile, debug)
	defer logger.Close()

	restorer := recovery.NewRestorer(cfg, logger)
	if err := restorer.Restore(target); err != nil {
		logger.Error("Restore failed: %v", err)
		os.Exit(1)
	}
}
