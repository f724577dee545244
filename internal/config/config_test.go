package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Timeout is 10 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 10*time.Second {
			t.Errorf("expected Timeout to be 10s, got %v", cfg.Timeout)
		}
	})

	t.Run("default UserAgent is Mozilla/5.0", func(t *testing.T) {
		t.Parallel()
		if cfg.UserAgent != "Mozilla/5.0" {
			t.Errorf("expected UserAgent to be 'Mozilla/5.0', got %q", cfg.UserAgent)
		}
	})

	t.Run("default ReportFile is results.txt", func(t *testing.T) {
		t.Parallel()
		if cfg.ReportFile != "results.txt" {
			t.Errorf("expected ReportFile to be 'results.txt', got %q", cfg.ReportFile)
		}
	})

	t.Run("default Targets is empty", func(t *testing.T) {
		t.Parallel()
		if len(cfg.Targets) != 0 {
			t.Errorf("expected no targets, got %d", len(cfg.Targets))
		}
	})

	t.Run("default Verbose is false", func(t *testing.T) {
		t.Parallel()
		if cfg.Verbose {
			t.Error("expected Verbose to be false")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		return &Config{
			Targets:    []string{"https://upload.wikimedia.org/logo.png"},
			Timeout:    10 * time.Second,
			UserAgent:  DefaultUserAgent,
			ReportFile: DefaultReportFile,
		}
	}

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("http target is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Targets = []string{"http://127.0.0.1:8080/image.png"}

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty targets returns ErrNoTarget", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Targets = nil

		if err := cfg.Validate(); !errors.Is(err, ErrNoTarget) {
			t.Errorf("expected ErrNoTarget, got %v", err)
		}
	})

	t.Run("zero timeout returns ErrInvalidTimeout", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Timeout = 0

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("negative timeout returns ErrInvalidTimeout", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Timeout = -1 * time.Second

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("empty report file returns ErrNoReportFile", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.ReportFile = ""

		if err := cfg.Validate(); !errors.Is(err, ErrNoReportFile) {
			t.Errorf("expected ErrNoReportFile, got %v", err)
		}
	})

	invalidTargets := []struct {
		name   string
		target string
	}{
		{"ftp scheme", "ftp://example.com/logo.png"},
		{"missing scheme", "example.com/logo.png"},
		{"missing host", "https:///logo.png"},
		{"unparsable", "https://exa mple.com/%zz"},
	}

	for _, tc := range invalidTargets {
		tc := tc
		t.Run(tc.name+" returns ErrInvalidTarget", func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			cfg.Targets = append(cfg.Targets, tc.target)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidTarget) {
				t.Fatalf("expected ErrInvalidTarget, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.target) {
				t.Errorf("expected error to name %q, got %v", tc.target, err)
			}
		})
	}
}

func TestParseTargets(t *testing.T) {
	t.Parallel()

	t.Run("preserves order and duplicates", func(t *testing.T) {
		t.Parallel()

		data := []byte(`targets:
  - https://b.example/logo.png
  - https://a.example/logo.png
  - https://b.example/logo.png
`)
		got, err := ParseTargets(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{
			"https://b.example/logo.png",
			"https://a.example/logo.png",
			"https://b.example/logo.png",
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d targets, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("target %d = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("empty document yields no targets", func(t *testing.T) {
		t.Parallel()

		got, err := ParseTargets([]byte(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no targets, got %v", got)
		}
	})

	t.Run("malformed YAML returns error", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseTargets([]byte("targets: [unterminated")); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestDefaultTargets(t *testing.T) {
	t.Parallel()

	targets, err := DefaultTargets()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(targets) != 21 {
		t.Errorf("expected 21 targets, got %d", len(targets))
	}

	t.Run("first target is the Toyota logo", func(t *testing.T) {
		t.Parallel()
		if !strings.Contains(targets[0], "Toyota.svg") {
			t.Errorf("unexpected first target %q", targets[0])
		}
	})

	t.Run("last target is the Infiniti logo", func(t *testing.T) {
		t.Parallel()
		if !strings.Contains(targets[len(targets)-1], "Infiniti_logo.svg") {
			t.Errorf("unexpected last target %q", targets[len(targets)-1])
		}
	})

	t.Run("every target passes validation", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Targets = targets
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
