package config

import (
	"encoding/json"
	"os"

	"github.com/researchhub/hubcli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	APIURL    string `json:"api_url"`
	SessionDB string `json:"session_db"`
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c / -config. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.APIURL, jc.APIURL)
	overlay(&cfg.SessionDB, jc.SessionDB)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
