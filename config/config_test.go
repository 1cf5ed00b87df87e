package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "campus_portal" {
		t.Errorf("db.name = %q", cfg.Database.Name)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("auth.session_ttl = %v, want 24h", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.SweepInterval != time.Hour {
		t.Errorf("auth.sweep_interval = %v, want 1h", cfg.Auth.SweepInterval)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Auth:   AuthConfig{SessionTTL: time.Hour, SweepInterval: time.Hour},
			Seed:   SeedConfig{AdminUsername: "admin", AdminPassword: "changeme"},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"zero ttl", func(c *Config) { c.Auth.SessionTTL = 0 }},
		{"zero sweep", func(c *Config) { c.Auth.SweepInterval = 0 }},
		{"no seed username", func(c *Config) { c.Seed.AdminUsername = "" }},
		{"no seed password", func(c *Config) { c.Seed.AdminPassword = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("invalid config accepted")
			}
		})
	}
}
