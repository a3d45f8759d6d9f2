package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Fatalf("server defaults: %+v", cfg.Server)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level: %q", cfg.Log.Level)
	}
	opts := cfg.Translate.Options()
	if !opts.GeneralSafety || opts.StrictModifier || opts.CacheSize != 1024 {
		t.Fatalf("translate defaults: %+v", opts)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "server:\n  addr: \":9090\"\n  shutdown_timeout: 2s\ntranslate:\n  strict_modifier: true\n  cache_size: 16\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XIANGQI_LOG_LEVEL", "debug")
	t.Setenv("XIANGQI_TRANSLATE_GENERAL_SAFETY", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Fatalf("server: %+v", cfg.Server)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("env should override log level, got %q", cfg.Log.Level)
	}
	if !cfg.Translate.StrictModifier || cfg.Translate.CacheSize != 16 || cfg.Translate.GeneralSafety {
		t.Fatalf("translate: %+v", cfg.Translate)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing config file should fail")
	}
}
