package vars

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadJSONEnvironment(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "http-client.env.json", `{
		"dev":  {"host": "localhost:8080", "port": 8080},
		"prod": {"host": "api.example.com"}
	}`)

	envs, err := LoadEnvironmentFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envs["dev"]["host"] != "localhost:8080" {
		t.Fatalf("unexpected dev host %q", envs["dev"]["host"])
	}
	if envs["dev"]["port"] != "8080" {
		t.Fatalf("numeric values must stringify, got %q", envs["dev"]["port"])
	}

	provider := envs.Provider("prod")
	if value, ok := provider.Resolve("HOST"); !ok || value != "api.example.com" {
		t.Fatalf("case-insensitive lookup failed: %q %v", value, ok)
	}
}

func TestLoadYAMLEnvironment(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "http-client.env.yaml", "staging:\n  host: staging.example.com\n  debug: true\n")

	envs, err := LoadEnvironmentFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envs["staging"]["host"] != "staging.example.com" {
		t.Fatalf("unexpected host %q", envs["staging"]["host"])
	}
	if envs["staging"]["debug"] != "true" {
		t.Fatalf("booleans must stringify, got %q", envs["staging"]["debug"])
	}
}

func TestLoadDotEnvEnvironment(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, ".env.staging", `
# comment
export HOST=staging.example.com
URL="https://${HOST}/api" # inline comment
LITERAL='${HOST}'
`)

	envs, err := LoadEnvironmentFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values, ok := envs["staging"]
	if !ok {
		t.Fatalf("environment name should derive from the file name, got %v", envs.Names())
	}
	if values["HOST"] != "staging.example.com" {
		t.Fatalf("unexpected HOST %q", values["HOST"])
	}
	if values["URL"] != "https://staging.example.com/api" {
		t.Fatalf("interpolation failed: %q", values["URL"])
	}
	if values["LITERAL"] != "${HOST}" {
		t.Fatalf("single-quoted values must stay literal, got %q", values["LITERAL"])
	}
}

func TestResolveEnvironmentProbesSearchPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "http-client.env.json"), []byte(`{"dev": {"a": "1"}}`), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	envs, path, err := ResolveEnvironment([]string{t.TempDir(), dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("unexpected resolved path %q", path)
	}
	if envs["dev"]["a"] != "1" {
		t.Fatalf("unexpected environment %v", envs)
	}
}

func TestResolveEnvironmentMissing(t *testing.T) {
	t.Parallel()

	if _, _, err := ResolveEnvironment([]string{t.TempDir()}); err == nil {
		t.Fatalf("expected error when no profile file exists")
	}
}
