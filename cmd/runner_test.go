package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/desertthunder/jukebox/internal/store"
	jbtesting "github.com/desertthunder/jukebox/internal/testing"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func newTestRunner(output *bytes.Buffer) *Runner {
	return NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Logger: shared.NewLogger(output),
		Output: output,
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("Compact", func(t *testing.T) {
		var out bytes.Buffer
		r := newTestRunner(&out)

		if err := r.writeJSON(map[string]string{"key": "value"}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if got := strings.TrimSpace(out.String()); got != `{"key":"value"}` {
			t.Errorf("unexpected output: %q", got)
		}
	})

	t.Run("Pretty", func(t *testing.T) {
		var out bytes.Buffer
		r := newTestRunner(&out)

		if err := r.writeJSON(map[string]string{"key": "value"}, true); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if !strings.Contains(out.String(), "\n  \"key\"") {
			t.Errorf("expected indented output, got %q", out.String())
		}
	})

	t.Run("WriteFailure", func(t *testing.T) {
		r := NewRunner(RunnerOpts{Output: &jbtesting.FWriter{}, Logger: shared.NewLogger(nil)})

		if err := r.writeJSON(map[string]string{"key": "value"}, false); err == nil {
			t.Error("expected an error from a failing writer")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("MissingFileUsesDefaults", func(t *testing.T) {
		var out bytes.Buffer
		r := newTestRunner(&out)

		config := r.loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		if config.Server.Port == 0 {
			t.Error("defaults should carry a listen port")
		}
		if config.Realtime.SendBuffer == 0 {
			t.Error("defaults should carry a realtime send buffer")
		}
	})

	t.Run("ReadsFile", func(t *testing.T) {
		var out bytes.Buffer
		r := newTestRunner(&out)

		path := filepath.Join(t.TempDir(), "config.toml")
		if err := shared.CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config: %v", err)
		}

		config := r.loadConfig(path)
		if config.Database.Path == "" {
			t.Error("expected database path from file")
		}
	})
}

func TestSetup(t *testing.T) {
	runSetup := func(t *testing.T, r *Runner, args ...string) error {
		t.Helper()
		cmd := setupCommand(r)
		return cmd.Run(context.Background(), append([]string{"setup"}, args...))
	}

	t.Run("CreatesConfigAndDatabase", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.toml")

		var out bytes.Buffer
		r := newTestRunner(&out)

		// Point the scaffolded config's database at the temp dir by
		// creating it first and rewriting the path line.
		if err := shared.CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config: %v", err)
		}
		content := jbtesting.MustReadFile(t, configPath)
		dbPath := filepath.Join(dir, "jukebox.db")
		content = strings.Replace(content, `path = "jukebox.db"`, `path = "`+dbPath+`"`, 1)
		if err := writeFile(configPath, content); err != nil {
			t.Fatalf("failed to rewrite config: %v", err)
		}

		if err := runSetup(t, r, "--config", configPath); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		jbtesting.AssertFileExists(t, configPath)
		jbtesting.AssertFileExists(t, dbPath)

		// Migrations applied: the collections accept documents.
		db, err := shared.NewDatabase(dbPath)
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		coll := store.New(db).Collection(store.UsersCollection)
		if _, err := coll.InsertOne(map[string]string{"name": "Ann", "email": "ann@x.io"}); err != nil {
			t.Errorf("collections not migrated: %v", err)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.toml")

		var out bytes.Buffer
		r := newTestRunner(&out)

		if err := shared.CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config: %v", err)
		}
		content := jbtesting.MustReadFile(t, configPath)
		content = strings.Replace(content, `path = "jukebox.db"`, `path = "`+filepath.Join(dir, "jukebox.db")+`"`, 1)
		if err := writeFile(configPath, content); err != nil {
			t.Fatalf("failed to rewrite config: %v", err)
		}

		for range 2 {
			if err := runSetup(t, r, "--config", configPath); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
		}
	})
}

func TestBuildHandler(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(&out)

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	defer db.Close()
	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	handler := r.buildHandler(store.New(db), shared.DefaultConfig())

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from GET /users, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}
