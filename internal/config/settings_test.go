package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *s != *DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults", s)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"contact_email": "me@example.com", "skip_malformed": true}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.ContactEmail != "me@example.com" || !s.SkipMalformed {
		t.Errorf("Load() = %+v", s)
	}
	if s.APIRoot != DefaultSettings().APIRoot {
		t.Errorf("unset fields should keep defaults, APIRoot = %q", s.APIRoot)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "api_root: http://localhost:9999\noutput_path_format: out/{username}.csv\nrequest_timeout_seconds: 2.5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.APIRoot != "http://localhost:9999" {
		t.Errorf("APIRoot = %q", s.APIRoot)
	}
	if got := s.OutputPath("bob"); got != "out/bob.csv" {
		t.Errorf("OutputPath = %q", got)
	}
	if got := s.ToClientOptions().Timeout; got != 2500*time.Millisecond {
		t.Errorf("Timeout = %v, want 2.5s", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error but got none")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"settings.json", "settings.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			s := DefaultSettings()
			s.ContactEmail = "me@example.com"
			s.Timezone = "UTC"
			if err := s.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if *got != *s {
				t.Errorf("round trip = %+v, want %+v", got, s)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	// keep any real .env out of the test
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("CHESSCOM_API_ROOT", "http://env.test")
	t.Setenv("CHESSCOM_CONTACT_EMAIL", "env@example.com")
	t.Setenv("LOG_LEVEL", "DEBUG")

	s := DefaultSettings()
	s.ApplyEnv()

	if s.APIRoot != "http://env.test" {
		t.Errorf("APIRoot = %q", s.APIRoot)
	}
	if s.ContactEmail != "env@example.com" {
		t.Errorf("ContactEmail = %q", s.ContactEmail)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
}

func TestToClientOptions_UserAgentFallsBackToEmail(t *testing.T) {
	s := DefaultSettings()
	s.ContactEmail = "me@example.com"

	opts := s.ToClientOptions()
	if opts.UserAgent != "me@example.com" || opts.Email != "me@example.com" {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Timeout != 0 {
		t.Errorf("default timeout should be none, got %v", opts.Timeout)
	}

	s.UserAgent = "custom-agent"
	if got := s.ToClientOptions().UserAgent; got != "custom-agent" {
		t.Errorf("UserAgent = %q", got)
	}
}

func TestLocation(t *testing.T) {
	s := DefaultSettings()
	loc, err := s.Location()
	if err != nil || loc != time.Local {
		t.Errorf("empty timezone should be time.Local, got %v %v", loc, err)
	}

	s.Timezone = "UTC"
	loc, err = s.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location(UTC) = %v %v", loc, err)
	}

	s.Timezone = "Not/AZone"
	if _, err := s.Location(); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
