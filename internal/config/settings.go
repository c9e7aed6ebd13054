package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/chessprofile/chess-profile/internal/chesscom"
	"github.com/chessprofile/chess-profile/internal/http"
	ioutils "github.com/chessprofile/chess-profile/internal/io"
)

// Settings holds all configuration options.
type Settings struct {
	// API settings
	APIRoot               string  `json:"api_root" yaml:"api_root"`
	ContactEmail          string  `json:"contact_email" yaml:"contact_email"`
	UserAgent             string  `json:"user_agent" yaml:"user_agent"`
	RequestTimeoutSeconds float64 `json:"request_timeout_seconds" yaml:"request_timeout_seconds"`

	// Output settings
	OutputPathFormat string `json:"output_path_format" yaml:"output_path_format"`
	Timezone         string `json:"timezone" yaml:"timezone"` // empty means local time

	// Record handling
	SkipMalformed bool `json:"skip_malformed" yaml:"skip_malformed"`

	// Logging
	LogLevel    string `json:"log_level" yaml:"log_level"`
	Environment string `json:"environment" yaml:"environment"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		APIRoot:               chesscom.DefaultAPIRoot,
		RequestTimeoutSeconds: 0,

		OutputPathFormat: ioutils.DefaultOutputPathFormat,

		SkipMalformed: false,

		LogLevel:    "info",
		Environment: "development",
	}
}

// Load reads settings from a JSON or YAML file.
//
// The format is picked from the extension: .yaml and .yml are YAML,
// anything else is JSON. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, picked by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from the environment.
//
// A .env file in the working directory is loaded first; it never overrides
// variables that are already set.
func (s *Settings) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("CHESSCOM_API_ROOT"); v != "" {
		s.APIRoot = v
	}
	if v := os.Getenv("CHESSCOM_CONTACT_EMAIL"); v != "" {
		s.ContactEmail = v
	}
	if v := os.Getenv("CHESSCOM_USER_AGENT"); v != "" {
		s.UserAgent = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		s.Environment = strings.ToLower(v)
	}
}

// Location resolves the Timezone setting. Empty means time.Local.
func (s *Settings) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// ToClientOptions converts settings to http.Options.
//
// chess.com asks for a contact address in the User-Agent, so the contact
// email is used when no explicit user agent is configured.
func (s *Settings) ToClientOptions() http.Options {
	ua := s.UserAgent
	if ua == "" {
		ua = s.ContactEmail
	}
	return http.Options{
		UserAgent: ua,
		Email:     s.ContactEmail,
		Timeout:   time.Duration(s.RequestTimeoutSeconds * float64(time.Second)),
	}
}

// OutputPath returns the export path for username.
func (s *Settings) OutputPath(username string) string {
	return ioutils.OutputPath(s.OutputPathFormat, username)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
