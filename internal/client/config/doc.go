// Package config loads runtime configuration for the ResearchHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: RESEARCHHUB_API_URL, RESEARCHHUB_SESSION_DB,
//     RESEARCHHUB_LOG_LEVEL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-u string   base URL of the ResearchHub API
//	-d string   path of the local session database
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "api_url": "https://api.researchhub.example",
//	  "session_db": "/home/me/.researchhub/session.db",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
package config
