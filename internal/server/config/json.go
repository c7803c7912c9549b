package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dberestov/taskdeck/internal/flagx"
	"github.com/dberestov/taskdeck/internal/timex"
)

// JsonConfig is the intermediate DTO for JSON configuration files. Duration
// fields accept both strings ("24h") and integer nanoseconds via
// timex.Duration.
type JsonConfig struct {
	Addr          string         `json:"addr"`
	DataDir       string         `json:"data_dir"`
	StaticDir     string         `json:"static_dir"`
	SecretKey     string         `json:"secret_key"`
	TokenValidity timex.Duration `json:"token_validity"`
}

// parseJson overlays values from the JSON file named by the -c or -config
// flags. Absent flags mean no file is loaded; fields missing from the file
// keep their current values.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", jsonConfigFile, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DataDir != "" {
		config.DataDir = c.DataDir
	}
	if c.StaticDir != "" {
		config.StaticDir = c.StaticDir
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity.Duration != 0 {
		config.TokenValidity = time.Duration(c.TokenValidity.Duration)
	}
	return nil
}
