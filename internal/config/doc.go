// Package config provides configuration management for chess-profile.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Environment overrides, including a .env file
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Talks to https://api.chess.com
//	// Writes {username}_games.csv in the working directory
//	// Stops at the first malformed record
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
// ApplyEnv reads .env (if present) and then these variables:
//   - CHESSCOM_API_ROOT
//   - CHESSCOM_CONTACT_EMAIL
//   - CHESSCOM_USER_AGENT
//   - LOG_LEVEL
//   - ENVIRONMENT
package config
