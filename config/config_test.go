package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/marble-sandbox/parameter"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Expected defaults without a file, got %v", err)
	}
	if cfg.Sim.TickRate != 60 || cfg.Sim.RewindCapacity != parameter.RewindCapacity {
		t.Errorf("Expected sim defaults, got %+v", cfg.Sim)
	}
	if cfg.Record.DSN != "marbles.db" || cfg.Spectator.Enabled {
		t.Errorf("Expected record on sqlite and spectator off, got %+v %+v", cfg.Record, cfg.Spectator)
	}
	if cfg.Source != "" {
		t.Errorf("Expected no source file, got %q", cfg.Source)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	data := `{"logLevel": "debug", "audio": {"muted": true, "volume": 0.25}, "level": {"start": 3}, "spectator": {"enabled": true}}`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MARBLES_SPECTATOR_ADDR", "0.0.0.0:9000")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if cfg.LogLevel != "debug" || !cfg.Audio.Muted || cfg.Audio.Volume != 0.25 {
		t.Errorf("Expected file values, got %+v", cfg)
	}
	if cfg.Level.Start != 3 || !cfg.Spectator.Enabled {
		t.Errorf("Expected level start and spectator from file, got %+v", cfg)
	}
	if cfg.Spectator.Addr != "0.0.0.0:9000" {
		t.Errorf("Expected env override, got %q", cfg.Spectator.Addr)
	}
	if cfg.Source == "" {
		t.Error("Expected source file recorded")
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := isolate(t)
	os.WriteFile(filepath.Join(dir, FileName), []byte("{broken"), 0o644)

	if _, err := Load(dir); err == nil {
		t.Error("Expected parse error")
	}
}

func TestLoadRejectsTickRate(t *testing.T) {
	dir := isolate(t)
	os.WriteFile(filepath.Join(dir, FileName), []byte(`{"sim": {"tickRate": 0}}`), 0o644)

	if _, err := Load(dir); err == nil {
		t.Error("Expected invalid tick rate to fail")
	}
}

func TestVolumeClamped(t *testing.T) {
	dir := isolate(t)
	os.WriteFile(filepath.Join(dir, FileName), []byte(`{"audio": {"volume": 9}}`), 0o644)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Audio.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Audio.Volume)
	}
}
