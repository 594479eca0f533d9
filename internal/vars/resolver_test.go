package vars

import (
	"strings"
	"testing"

	"github.com/unkn0wn-root/restcurl/internal/notify"
)

func TestExpandSubstitutes(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(notify.Discard, nil, NewMapProvider("file", map[string]string{
		"host":  "example.com",
		"token": "abc123",
	}))

	got := resolver.Expand("https://{{host}}/api?token={{token}}")
	if got != "https://example.com/api?token=abc123" {
		t.Fatalf("unexpected expansion %q", got)
	}
}

func TestExpandMissingKeepsPlaceholderAndWarnsOnce(t *testing.T) {
	t.Parallel()

	collector := &notify.Collector{}
	resolver := NewResolver(collector, nil)

	got := resolver.Expand("https://{{missing}}/x")
	if got != "https://{{missing}}/x" {
		t.Fatalf("placeholder must stay, got %q", got)
	}

	warnings := collector.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "missing") {
		t.Fatalf("warning must name the variable, got %q", warnings[0])
	}
}

func TestExpandScopePrecedence(t *testing.T) {
	t.Parallel()

	scope := NewScope()
	scope.Set("host", "from-file")
	env := NewMapProvider("env", map[string]string{
		"host":  "from-env",
		"extra": "env-only",
	})
	resolver := NewResolver(notify.Discard, nil, scope, env)

	if got := resolver.Expand("{{host}}"); got != "from-file" {
		t.Fatalf("document scope must win, got %q", got)
	}
	if got := resolver.Expand("{{extra}}"); got != "env-only" {
		t.Fatalf("environment fallback failed, got %q", got)
	}
}

func TestExpandSinglePass(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(notify.Discard, nil, NewMapProvider("file", map[string]string{
		"outer": "{{inner}}",
		"inner": "should-not-appear",
	}))

	if got := resolver.Expand("{{outer}}"); got != "{{inner}}" {
		t.Fatalf("substituted text must not be re-scanned, got %q", got)
	}
}

func TestExpandStripsDoubleQuotes(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(notify.Discard, nil, NewMapProvider("file", map[string]string{
		"v": `say "hi"`,
	}))

	if got := resolver.Expand(`{"msg": "{{v}}"}`); got != "{msg: say hi}" {
		t.Fatalf("expected all double quotes stripped, got %q", got)
	}
}

func TestExpandDynamicFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(notify.Discard, NewDynamics())
	if got := resolver.Expand("x{{$nope}}y"); got != "xy" {
		t.Fatalf("unknown dynamic variable must yield empty string, got %q", got)
	}
}

func TestExpandDynamicUUID(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(notify.Discard, NewDynamics())
	got := resolver.Expand("{{$uuid}}")
	if len(got) != 36 {
		t.Fatalf("expected uuid-style length 36, got %d (%q)", len(got), got)
	}
	if got == resolver.Expand("{{$uuid}}") {
		t.Fatalf("each reference must generate a fresh value")
	}
}

func TestScopeInsertionOrder(t *testing.T) {
	t.Parallel()

	scope := NewScope()
	scope.Set("b", "1")
	scope.Set("a", "2")
	scope.Set("b", "3")

	names := scope.Names()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Fatalf("unexpected name order %v", names)
	}
	if value, _ := scope.Resolve("b"); value != "3" {
		t.Fatalf("redefinition must overwrite, got %q", value)
	}
}
