package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// loadSettings resolves the configuration for one invocation: an explicit
// --config path, an auto-detected config file, or the built-in defaults.
// The --repo-dir flag overrides the configured repository directory.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath == "" {
		if foundPath, err := entities.FindConfigFile(); err == nil {
			configPath = foundPath
		}
	}

	var settings *entities.Settings
	if configPath != "" {
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, err
		}
		logger.Debugf("Using config file: %s", configPath)
		settings = loaded
	} else {
		logger.Debug("No config file found, using defaults")
		settings = entities.DefaultSettings()
	}

	if repoDir, _ := cmd.Flags().GetString("repo-dir"); repoDir != "" {
		settings.Gateway.RepoDir = repoDir
	}

	return settings, nil
}
