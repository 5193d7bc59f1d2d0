package query

import (
	"errors"
	"testing"

	"fixcheck/internal/version"
)

func TestExtractParam(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		key       string
		expected  string
		wantFound bool
	}{
		{name: "absolute url", url: "http://localhost:3000/?version=16.3.0", key: "version", expected: "16.3.0", wantFound: true},
		{name: "path with query", url: "/fixtures/text-inputs?version=16.5.0&x=1", key: "version", expected: "16.5.0", wantFound: true},
		{name: "bare query string", url: "?version=15.0.0", key: "version", expected: "15.0.0", wantFound: true},
		{name: "no query", url: "http://localhost:3000/", key: "version", wantFound: false},
		{name: "missing key", url: "/?other=1", key: "version", wantFound: false},
		{name: "first occurrence wins", url: "/?version=16.0.0&version=17.0.0", key: "version", expected: "16.0.0", wantFound: true},
		{name: "bare key is empty string", url: "/?version", key: "version", expected: "", wantFound: true},
		{name: "empty value", url: "/?version=", key: "version", expected: "", wantFound: true},
		{name: "url decoded", url: "/?version=16.4.0-alpha%2B1&q=a+b", key: "q", expected: "a b", wantFound: true},
		{name: "decoded plus sign", url: "/?version=16.4.0%2Bbuild", key: "version", expected: "16.4.0+build", wantFound: true},
		{name: "fragment ignored", url: "/?version=16.4.0#case-1", key: "version", expected: "16.4.0", wantFound: true},
		{name: "malformed pair skipped", url: "/?bad=%zz&version=16.4.0", key: "version", expected: "16.4.0", wantFound: true},
		{name: "malformed key skipped", url: "/?%zz=1&version=16.4.0", key: "version", expected: "16.4.0", wantFound: true},
		{name: "undecodable value kept raw", url: "/?version=16.3.0%zz", key: "version", expected: "16.3.0%zz", wantFound: true},
		{name: "semicolon stays in value", url: "/?version=16.3.0;x=1", key: "version", expected: "16.3.0;x=1", wantFound: true},
		{name: "question mark inside fragment", url: "/page#frag?version=16.3.0", key: "version", wantFound: false},
		{name: "empty pairs ignored", url: "/?&&version=16.4.0", key: "version", expected: "16.4.0", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, found := ExtractParam(tt.url, tt.key)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestTargetFromURL(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		target, err := TargetFromURL("http://localhost/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if target.IsSet() {
			t.Errorf("expected unset target, got %s", target)
		}
	})

	t.Run("empty value is absent", func(t *testing.T) {
		target, err := TargetFromURL("/?version=")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if target.IsSet() {
			t.Errorf("expected unset target, got %s", target)
		}
	})

	t.Run("present", func(t *testing.T) {
		target, err := TargetFromURL("/?version=16.3.0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !target.IsSet() || target.Version() != "16.3.0" {
			t.Errorf("expected 16.3.0, got %s", target)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{
			"/?version=sixteen",
			"/?version=16.3.0%zz",
			"/?version=16.3.0;x=1",
		} {
			target, err := TargetFromURL(raw)
			if !errors.Is(err, version.ErrInvalidVersionFormat) {
				t.Errorf("%s: expected ErrInvalidVersionFormat, got %v (target %s)", raw, err, target)
			}
		}
	})

	t.Run("fragment before query", func(t *testing.T) {
		target, err := TargetFromURL("/page#frag?version=16.3.0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if target.IsSet() {
			t.Errorf("expected unset target, got %s", target)
		}
	})
}
