package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "jukebox.db" {
			t.Errorf("expected database path jukebox.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 5000 {
			t.Errorf("expected server port 5000, got %d", config.Server.Port)
		}

		if len(config.Server.AllowedOrigins) != 1 || config.Server.AllowedOrigins[0] != "*" {
			t.Errorf("expected wildcard allowed origins, got %v", config.Server.AllowedOrigins)
		}

		if config.Realtime.SendBuffer != 64 {
			t.Errorf("expected send buffer 64, got %d", config.Realtime.SendBuffer)
		}

		if config.Realtime.MaxMessageBytes != 4096 {
			t.Errorf("expected max message bytes 4096, got %d", config.Realtime.MaxMessageBytes)
		}
	})

	t.Run("Addr", func(t *testing.T) {
		config := DefaultConfig()
		if got := config.Server.Addr(); got != "127.0.0.1:5000" {
			t.Errorf("expected 127.0.0.1:5000, got %s", got)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[server]
host = "0.0.0.0"
port = 8080
allowed_origins = ["http://localhost:3000"]
shutdown_timeout_seconds = 5

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[realtime]
send_buffer = 32
max_message_bytes = 2048
message_rate = 5.0
message_burst = 10
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if len(config.Server.AllowedOrigins) != 1 || config.Server.AllowedOrigins[0] != "http://localhost:3000" {
			t.Errorf("unexpected allowed origins: %v", config.Server.AllowedOrigins)
		}

		if config.Realtime.MessageRate != 5.0 {
			t.Errorf("expected message rate 5.0, got %v", config.Realtime.MessageRate)
		}
	})

	t.Run("LoadConfigMissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}
