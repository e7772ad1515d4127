package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoadGlobalConfig loads global configuration from ~/.codectx/config.yml.
// Returns default (empty) values if the file doesn't exist (not an error).
// Environment variables override file values (CODECTX_* prefix).
func LoadGlobalConfig() (*GlobalConfig, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	globalDir := filepath.Join(home, ".codectx")

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(globalDir)

	v.SetEnvPrefix("CODECTX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindGlobalEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &GlobalConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func bindGlobalEnvVars(v *viper.Viper) {
	v.BindEnv("storage.vector_db_dsn")
	v.BindEnv("storage.graph_db_uri")
	v.BindEnv("storage.graph_db_username")
	v.BindEnv("storage.graph_db_password")
	v.BindEnv("embedding.endpoint")
	v.BindEnv("embedding.explainer_endpoint")
}
