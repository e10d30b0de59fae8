package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.UploadDir == "" {
		t.Error("upload dir must have a default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADMIN_MAIL", "admin@example.com")
	t.Setenv("PORT", "9001")

	cfg := Load()
	if cfg.AdminEmail != "admin@example.com" {
		t.Errorf("expected admin mail from env, got %s", cfg.AdminEmail)
	}
	if cfg.Port != "9001" {
		t.Errorf("expected port from env, got %s", cfg.Port)
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminEmail: "admin@example.com"}
	if !cfg.IsAdmin("admin@example.com") {
		t.Error("admin address must be recognized")
	}
	if cfg.IsAdmin("user@example.com") {
		t.Error("other addresses are not admin")
	}

	// An unset ADMIN_MAIL must never make a sessionless request admin
	empty := &Config{}
	if empty.IsAdmin("") {
		t.Error("empty email must never be admin")
	}
}
