package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath = "~/.dayplan.db"
	DefaultKey  = "todos"
)

// Config locates the durable slot.
type Config interface {
	BasePath() string
	Key() string
}

// FileConfig is the configuration read from .dayplan files and DAYPLAN_*
// environment variables.
type FileConfig struct {
	Path        string `json:"path"`
	SlotKey     string `json:"key"`
	LogLevel    string `json:"logLevel"`
	LogFile     string `json:"logFile"`
	LabelFormat string `json:"labelFormat"`
	// Ephemeral keeps tasks in memory for one run.
	Ephemeral   bool   `json:"ephemeral"`
}

// LoadConfig reads .dayplan from $DAYPLAN_CONFIG_PATH, the working directory
// or $HOME, in that order. A missing file is not an error.
func LoadConfig() (*FileConfig, error) {
	viper.SetDefault("path", DefaultPath)
	viper.SetDefault("key", DefaultKey)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.file", "")
	viper.SetDefault("label_format", "January 2006")
	viper.SetDefault("ephemeral", false)
	viper.SetConfigName(".dayplan") // .yaml is implicit
	viper.SetEnvPrefix("DAYPLAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("DAYPLAN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &FileConfig{
		Path:        path,
		SlotKey:     viper.GetString("key"),
		LogLevel:    viper.GetString("log.level"),
		LogFile:     viper.GetString("log.file"),
		LabelFormat: viper.GetString("label_format"),
		Ephemeral:   viper.GetBool("ephemeral"),
	}, nil
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) Key() string {
	if f.SlotKey == "" {
		return DefaultKey
	}
	return f.SlotKey
}
