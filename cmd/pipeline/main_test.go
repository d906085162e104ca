package main

import (
	"testing"
)

// Smoke test to ensure main honors SKIP_PIPELINE_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_PIPELINE_RUN", "1")
	main()
}

func TestRunFixtureJobOnce(t *testing.T) {
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("PIPELINE_JOB", "teams")
	t.Setenv("RUN_MODE", "once")
	t.Setenv("STORAGE_BACKEND", "fs")
	t.Setenv("STORAGE_PATH", t.TempDir())
	t.Setenv("METRICS_ENABLED", "false")

	if code := run(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Setenv("PIPELINE_JOB", "compact")
	t.Setenv("METRICS_ENABLED", "false")

	if code := run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
