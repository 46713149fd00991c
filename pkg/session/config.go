package session

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
	BackendURL() string
	UploadURL() string
	UploadPreset() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.semana.db")
	viper.SetDefault("backend_url", "http://localhost:5000/")
	viper.SetDefault("upload_url", "")
	viper.SetDefault("upload_preset", "semana")
	viper.SetConfigName(".semana") // .yaml is implicit
	viper.SetEnvPrefix("SEMANA")
	viper.AutomaticEnv()

	if override := os.Getenv("SEMANA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		Path:    viper.GetString("path"),
		Backend: viper.GetString("backend_url"),
		Upload:  viper.GetString("upload_url"),
		Preset:  viper.GetString("upload_preset"),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Backend string `json:"backend_url"`
	Upload  string `json:"upload_url"`
	Preset  string `json:"upload_preset"`
}

func (f *fileConfig) BasePath() string {
	if expanded, err := homedir.Expand(f.Path); err == nil {
		return expanded
	}
	return f.Path
}

func (f *fileConfig) BackendURL() string {
	return f.Backend
}

func (f *fileConfig) UploadURL() string {
	return f.Upload
}

func (f *fileConfig) UploadPreset() string {
	return f.Preset
}
