package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "VIBEFOLIO_DATA_FILE", "VIBEFOLIO_UPLOAD_DIR", "ADMIN_USERNAME", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Storage.DataFile != "data/projects.json" {
		t.Errorf("Expected default data file, got %s", cfg.Storage.DataFile)
	}
	if cfg.Storage.UploadDir != "public/uploads" {
		t.Errorf("Expected default upload dir, got %s", cfg.Storage.UploadDir)
	}
	if cfg.Admin.Username == "" {
		t.Error("Expected a default admin username")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VIBEFOLIO_DATA_FILE", "/tmp/catalog.json")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Storage.DataFile != "/tmp/catalog.json" {
		t.Errorf("Expected overridden data file, got %s", cfg.Storage.DataFile)
	}
	if cfg.Admin.Username != "admin" {
		t.Errorf("Expected admin username, got %s", cfg.Admin.Username)
	}
	if len(cfg.Server.AllowOrigins) != 2 || cfg.Server.AllowOrigins[1] != "https://b.example" {
		t.Errorf("Expected trimmed origins list, got %v", cfg.Server.AllowOrigins)
	}
}
