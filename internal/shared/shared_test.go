package shared

import (
	"bytes"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(&out)

	logger.Info("hello", "key", "value")

	if out.Len() == 0 {
		t.Error("expected log output")
	}
}

func TestWithLogger(t *testing.T) {
	var out bytes.Buffer
	logger := WithLogger(NewLogger(&out), "component", "test")

	logger.Info("hello")

	if !bytes.Contains(out.Bytes(), []byte("component")) {
		t.Errorf("expected child logger context in output: %s", out.String())
	}
}

func TestOriginAllowed(t *testing.T) {
	cases := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"wildcard", []string{"*"}, "http://evil.example", true},
		{"exact match", []string{"http://localhost:3000"}, "http://localhost:3000", true},
		{"mismatch", []string{"http://localhost:3000"}, "http://evil.example", false},
		{"no origin header", []string{"http://localhost:3000"}, "", true},
		{"empty allow list", nil, "http://localhost:3000", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OriginAllowed(tc.allowed, tc.origin); got != tc.want {
				t.Errorf("OriginAllowed(%v, %q) = %v, want %v", tc.allowed, tc.origin, got, tc.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if first == "" || second == "" {
		t.Fatal("expected non-empty ids")
	}
	if first == second {
		t.Error("consecutive ids should differ")
	}
}
