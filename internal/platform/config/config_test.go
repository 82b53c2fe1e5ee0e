package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lifeagent/internal/platform/config"
)

func TestNewAppliesDefaultsWithoutFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Threshold != 20*time.Minute || cfg.SweepInterval != 10*time.Minute {
		t.Fatalf("unexpected durations: %s %s", cfg.Threshold, cfg.SweepInterval)
	}
	if len(cfg.Distracting) != 4 || cfg.Distracting[1] != "facebook.com" {
		t.Fatalf("unexpected distracting set: %v", cfg.Distracting)
	}
	if cfg.DBPath != filepath.Join(dir, "lifeagent.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
	if len(cfg.Rules) != 3 {
		t.Fatalf("expected default rules, got %d", len(cfg.Rules))
	}
	if mail := cfg.Rules[1]; mail.Name != "mail" || mail.Title != "Gmail reminder" || strings.Contains(mail.Message, "Sarah") {
		t.Fatalf("unexpected default mail rule %+v", mail)
	}
}

func TestNewOverlaysYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := `listen: 127.0.0.1:9000
threshold: 5m
sweep_interval: 30s
distracting: [news.ycombinator.com]
rules: []
notifier:
  kinds: [log, command]
  command: notify-send
`
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" || cfg.Threshold != 5*time.Minute || cfg.SweepInterval != 30*time.Second {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if len(cfg.Distracting) != 1 || cfg.Distracting[0] != "news.ycombinator.com" {
		t.Fatalf("unexpected distracting: %v", cfg.Distracting)
	}
	if len(cfg.Rules) != 0 {
		t.Fatalf("explicit empty rules must disable alerts, got %d", len(cfg.Rules))
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty dir should fail")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("notifier:\n  kinds: [plugin]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("plugin kind without binary should fail")
	}
	bad := t.TempDir()
	if err := os.WriteFile(filepath.Join(bad, config.FileName), []byte("sweep_interval: 10ms\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(bad); err == nil {
		t.Fatalf("sub-second sweep interval should fail")
	}
}
