package curl

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unkn0wn-root/restcurl/internal/restfile"
)

func TestBuildCommandFullArgv(t *testing.T) {
	t.Parallel()

	resolved := restfile.ResolvedRequest{
		Method:      "POST",
		URL:         "https://example.com/api",
		HTTPVersion: "1.1",
		Headers: map[string]string{
			"content-type": "application/json",
			"x-api-key":    "secret",
		},
		Body:    `{key: value}`,
		HasBody: true,
	}

	cmd := BuildCommand(resolved, BuildOptions{
		HeadersFile:  "/tmp/restcurl/headers.txt",
		BodyFile:     "/tmp/restcurl/body.txt",
		ExtraOptions: []string{"--connect-timeout", "10"},
		Version:      "1.2.3",
	})

	want := []string{
		"curl",
		"--silent",
		"--dump-header", "/tmp/restcurl/headers.txt",
		"--output", "/tmp/restcurl/body.txt",
		"--request", "POST",
		"--data", `{key: value}`,
		"--header", "content-type: application/json",
		"--header", "x-api-key: secret",
		"--http1.1",
		"--user-agent", "restcurl/1.2.3",
		"--connect-timeout", "10",
		"https://example.com/api",
	}
	if diff := cmp.Diff(want, cmd.Args); diff != "" {
		t.Fatalf("argv mismatch (-want +got):\n%s", diff)
	}
}

func TestBodyFlagDispatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		contentType string
		flag        string
		hasFlag     bool
	}{
		{"text/plain", "--data-raw", true},
		{"text/plain; charset=utf-8", "--data-raw", true},
		{"application/json", "--data", true},
		{"application/problem+json", "--data", true},
		{"application/x-www-form-urlencoded", "--data", true},
		{"multipart/form-data; boundary=X", "--data-binary", true},
		{"application/octet-stream", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		flag, ok := bodyFlag(tc.contentType)
		if ok != tc.hasFlag || flag != tc.flag {
			t.Fatalf("content type %q: got (%q, %v), want (%q, %v)",
				tc.contentType, flag, ok, tc.flag, tc.hasFlag)
		}
	}
}

func TestBuildCommandSkipsBodyForUnknownContentType(t *testing.T) {
	t.Parallel()

	resolved := restfile.ResolvedRequest{
		Method:  "POST",
		URL:     "https://example.com",
		Headers: map[string]string{"content-type": "application/octet-stream"},
		Body:    "payload",
		HasBody: true,
	}
	cmd := BuildCommand(resolved, BuildOptions{Version: "dev"})

	for _, arg := range cmd.Args {
		if arg == "payload" {
			t.Fatalf("body must not be attached for unmatched content type: %v", cmd.Args)
		}
	}
}

func TestBuildCommandPseudoHeaders(t *testing.T) {
	t.Parallel()

	resolved := restfile.ResolvedRequest{
		Method: "GET",
		URL:    "https://example.com",
		Headers: map[string]string{
			"http-client-pipe":   "jq .",
			"http-client-follow": "true",
			"accept":             "application/json",
		},
	}
	cmd := BuildCommand(resolved, BuildOptions{Version: "dev"})

	if cmd.PipeTarget != "jq ." {
		t.Fatalf("expected pipe target, got %q", cmd.PipeTarget)
	}
	for _, arg := range cmd.Args {
		if arg == "http-client-pipe: jq ." || arg == "http-client-follow: true" {
			t.Fatalf("pseudo-headers must not reach the wire: %v", cmd.Args)
		}
	}

	found := false
	for _, arg := range cmd.Args {
		if arg == "accept: application/json" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ordinary headers must pass through: %v", cmd.Args)
	}
}

func TestResponseFiletype(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"application/json":                "json",
		"application/json; charset=utf8": "json",
		"application/xml":                 "xml",
		"text/html":                       "html",
		"text/csv":                        "text",
		"":                                "text",
	}
	for accept, want := range cases {
		if got := ResponseFiletype(accept); got != want {
			t.Fatalf("accept %q: got %q, want %q", accept, got, want)
		}
	}
}
