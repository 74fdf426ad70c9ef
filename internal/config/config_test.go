package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "gitex.conf"))
}

func TestSetAndGet(t *testing.T) {
	cfg := testConfig(t)

	if err := cfg.Set("DEFAULT_COMMIT_MESSAGE", "wip"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := cfg.Get("DEFAULT_COMMIT_MESSAGE")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "wip" {
		t.Errorf("Get = %q, want %q", value, "wip")
	}
}

func TestGetMissingKey(t *testing.T) {
	cfg := testConfig(t)

	if _, err := cfg.Get("NO_SUCH_KEY"); err == nil {
		t.Error("Get on missing key returned nil error")
	}
}

func TestGetOrDefault(t *testing.T) {
	cfg := testConfig(t)

	// Defaults table wins over the provided fallback
	if got := cfg.GetOrDefault(KeyDefaultCommitMessage, "fallback"); got != "Default commit" {
		t.Errorf("GetOrDefault = %q, want %q", got, "Default commit")
	}

	// Unknown keys fall back to the caller's value
	if got := cfg.GetOrDefault("UNKNOWN", "fallback"); got != "fallback" {
		t.Errorf("GetOrDefault = %q, want %q", got, "fallback")
	}

	// Explicit values win over the defaults table
	if err := cfg.Set(KeyDefaultCommitMessage, "custom"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := cfg.GetOrDefault(KeyDefaultCommitMessage, "fallback"); got != "custom" {
		t.Errorf("GetOrDefault = %q, want %q", got, "custom")
	}
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitex.conf")

	cfg := New(path)
	if err := cfg.Set("KEY_ONE", "value one"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cfg.Set("KEY_TWO", "value two"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A fresh instance reads the same data back
	reloaded := New(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	value, err := reloaded.Get("KEY_ONE")
	if err != nil {
		t.Fatalf("Get after reload failed: %v", err)
	}
	if value != "value one" {
		t.Errorf("Get after reload = %q, want %q", value, "value one")
	}
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitex.conf")
	content := "# comment\n\nGOOD_KEY=good value\nmalformed line\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := New(path)
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.GetOrDefault("GOOD_KEY", ""); got != "good value" {
		t.Errorf("GetOrDefault = %q, want %q", got, "good value")
	}
	if len(cfg.GetAll()) != 1 {
		t.Errorf("GetAll returned %d entries, want 1", len(cfg.GetAll()))
	}
}

func TestDelete(t *testing.T) {
	cfg := testConfig(t)

	if err := cfg.Set("DOOMED", "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cfg.Delete("DOOMED"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if cfg.Exists("DOOMED") {
		t.Error("key still exists after Delete")
	}
}

func TestAliasLifecycle(t *testing.T) {
	cfg := testConfig(t)

	if err := cfg.SetAlias("st", "git status"); err != nil {
		t.Fatalf("SetAlias failed: %v", err)
	}
	if err := cfg.SetAlias("co", "git checkout"); err != nil {
		t.Fatalf("SetAlias failed: %v", err)
	}

	command, err := cfg.GetAlias("st")
	if err != nil {
		t.Fatalf("GetAlias failed: %v", err)
	}
	if command != "git status" {
		t.Errorf("GetAlias = %q, want %q", command, "git status")
	}

	names := cfg.AliasNames()
	if len(names) != 2 || names[0] != "co" || names[1] != "st" {
		t.Errorf("AliasNames = %v, want [co st]", names)
	}

	if err := cfg.DeleteAlias("st"); err != nil {
		t.Fatalf("DeleteAlias failed: %v", err)
	}
	if cfg.HasAlias("st") {
		t.Error("alias still exists after DeleteAlias")
	}

	if err := cfg.DeleteAlias("nope"); err == nil {
		t.Error("DeleteAlias on missing alias returned nil error")
	}
}

func TestClearAliases(t *testing.T) {
	cfg := testConfig(t)

	if err := cfg.Set("KEEP_ME", "setting"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	for _, name := range []string{"a", "b", "c"} {
		if err := cfg.SetAlias(name, "git "+name); err != nil {
			t.Fatalf("SetAlias failed: %v", err)
		}
	}

	if err := cfg.ClearAliases(); err != nil {
		t.Fatalf("ClearAliases failed: %v", err)
	}

	if len(cfg.Aliases()) != 0 {
		t.Errorf("Aliases after clear = %v, want empty", cfg.Aliases())
	}
	// Regular settings survive
	if !cfg.Exists("KEEP_ME") {
		t.Error("non-alias setting removed by ClearAliases")
	}
}

func TestAliasesDoNotLeakIntoSettings(t *testing.T) {
	cfg := testConfig(t)

	if err := cfg.SetAlias("pushall", "git push --all"); err != nil {
		t.Fatalf("SetAlias failed: %v", err)
	}

	for key := range cfg.Aliases() {
		if strings.HasPrefix(key, "alias.") {
			t.Errorf("alias name %q still carries the storage prefix", key)
		}
	}
}
