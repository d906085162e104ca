package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "")
	if got := intEnvOrDefault("INT_TEST", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}
	t.Setenv("INT_TEST", "12")
	if got := intEnvOrDefault("INT_TEST", 7); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	t.Setenv("INT_TEST", "twelve")
	if got := intEnvOrDefault("INT_TEST", 7); got != 7 {
		t.Fatalf("expected fallback on invalid value, got %d", got)
	}
}

func TestCountEnvOrDefault(t *testing.T) {
	t.Setenv("COUNT_TEST", "")
	if got := countEnvOrDefault("COUNT_TEST", 10); got != 10 {
		t.Fatalf("expected default 10, got %d", got)
	}
	t.Setenv("COUNT_TEST", "0")
	if got := countEnvOrDefault("COUNT_TEST", 10); got != 0 {
		t.Fatalf("expected 0 to be kept, got %d", got)
	}
	t.Setenv("COUNT_TEST", " -2 ")
	if got := countEnvOrDefault("COUNT_TEST", 10); got != -2 {
		t.Fatalf("expected -2 passed through for validation, got %d", got)
	}
	t.Setenv("COUNT_TEST", "ten")
	if got := countEnvOrDefault("COUNT_TEST", 10); got != 10 {
		t.Fatalf("expected fallback on invalid value, got %d", got)
	}
}
