package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the journal database lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads an optional .trace config file (current directory, or the
// directory named by TRACE_CONFIG_PATH) plus TRACE_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.trace.db")
	viper.SetConfigName(".trace") // .yaml is implicit
	viper.SetEnvPrefix("TRACE")
	viper.AutomaticEnv()

	if override := os.Getenv("TRACE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
