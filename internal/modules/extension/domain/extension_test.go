package domain_test

import (
	"testing"

	"lifeagent/internal/modules/extension/domain"
)

func TestBaseURL(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"127.0.0.1:7717": "http://127.0.0.1:7717",
		":8080":          "http://127.0.0.1:8080",
		"0.0.0.0:9000":   "http://127.0.0.1:9000",
		"localhost:7717": "http://localhost:7717",
		"[::1]:7717":     "http://[::1]:7717",
	}
	for addr, want := range cases {
		got, err := domain.BaseURL(addr)
		if err != nil || got != want {
			t.Fatalf("BaseURL(%q) = %q, %v; want %q", addr, got, err, want)
		}
	}
	for _, bad := range []string{"", "127.0.0.1", "127.0.0.1:0"} {
		if _, err := domain.BaseURL(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
