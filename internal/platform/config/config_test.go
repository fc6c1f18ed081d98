package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MYSQL_PORT", "")
	t.Setenv("SMTP_PORT", "")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.MySQLPort != "3306" {
		t.Errorf("expected default mysql port 3306, got %q", cfg.MySQLPort)
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("expected default smtp port 587, got %d", cfg.SMTPPort)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg := Load()

	if cfg.Port != "8081" {
		t.Errorf("expected port 8081, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "supersecret" {
		t.Errorf("expected jwt secret to be read, got %q", cfg.JWTSecret)
	}
	if cfg.SMTPPort != 2525 {
		t.Errorf("expected smtp port 2525, got %d", cfg.SMTPPort)
	}
	if !cfg.RunMigrations {
		t.Error("expected RunMigrations to be true")
	}
}

func TestLoad_BadSMTPPortFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Load()

	if cfg.SMTPPort != 587 {
		t.Errorf("expected fallback smtp port 587, got %d", cfg.SMTPPort)
	}
}
