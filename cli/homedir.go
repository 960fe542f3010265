package cli

import (
	"errors"
	"os"

	"coderkit/config"
	"coderkit/log"

	"github.com/spf13/cobra"
)

func GetHomeDir(cmd *cobra.Command) string {
	homeDirUnexp, err := cmd.Flags().GetString(FlagHome)
	if err != nil {
		panic(err)
	}
	homeDir := config.ExpandHomePath(homeDirUnexp)
	return homeDir
}

func InitHomeDir(cmd *cobra.Command) (string, error) {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.New("home directory is already initialized")
	}
	if err := config.InitHomeDir(homeDir); err != nil {
		return "", err
	}
	return homeDir, nil
}

// LoadConfig reads the home directory's config file and applies its logging
// settings. Logs go to stderr so that command output stays clean.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	homeDir := GetHomeDir(cmd)
	if err := config.EnsureHomeDir(homeDir); err != nil {
		return nil, err
	}
	cfg, err := config.ReadConfigFile(homeDir)
	if err != nil {
		return nil, err
	}
	lvl, err := log.NewLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetJSON(cfg.LogJSON)
	return cfg, nil
}
