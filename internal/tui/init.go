package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/studiowebux/porter/internal/collection"
	"github.com/studiowebux/porter/internal/config"
	"github.com/studiowebux/porter/internal/keybinds"
	"github.com/studiowebux/porter/internal/logging"
)

// Run starts the TUI and blocks until the user quits
func Run(cfg *config.Config, version string) error {
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	logFile, err := logging.OpenLogFile(cfg.LogFile, config.DirPermissions, config.FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	log := logging.InitLogger(cfg.Level(), logFile)
	log.WithFields(logrus.Fields{
		"version":         version,
		"config_file":     cfg.ConfigFile,
		"collection_file": cfg.CollectionFile,
		"request_timeout": cfg.RequestTimeout,
		"verify_tls":      cfg.VerifyTLS,
	}).Info("starting porter")

	registry, result := keybinds.LoadOrDefault(cfg.Keybinds)
	if result != nil {
		for _, e := range result.Errors {
			log.WithField("problem", e.Error()).Warn("ignoring keybinding override")
		}
		for _, w := range result.Warnings {
			log.WithField("problem", w.Error()).Info("keybinding override")
		}
	}

	store := collection.NewStore(cfg.CollectionFile)
	m := New(cfg, store, registry, version)

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited with error")
		return err
	}

	log.Info("exiting")
	return nil
}
