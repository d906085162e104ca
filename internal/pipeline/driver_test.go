package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/metrics"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/testutil"
)

type fixture struct {
	driver   *Driver
	provider *testutil.StubProvider
	store    *testutil.MemoryStore
	metrics  *metrics.Recorder
}

func newFixture(t *testing.T, cfg Config) fixture {
	t.Helper()
	provider := &testutil.StubProvider{}
	store := testutil.NewMemoryStore()
	recorder := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()

	d := New(provider, store, nil, cfg, logger, recorder)
	d.now = testutil.NowAt(time.Date(2023, 11, 16, 12, 0, 0, 0, time.UTC))
	d.newRunID = func() string { return "run-1" }
	d.sleep = func(context.Context, time.Duration) {}
	return fixture{driver: d, provider: provider, store: store, metrics: recorder}
}

func TestRunDispatchesAndRecordsJobs(t *testing.T) {
	f := newFixture(t, Config{})
	f.provider.Err = providers.ErrProviderUnavailable

	if err := f.driver.Run(context.Background(), JobTeams); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider error, got %v", err)
	}
	runs, failures := f.metrics.JobRuns(JobTeams)
	if runs != 1 || failures != 1 {
		t.Fatalf("expected 1 failed run, got runs=%d failures=%d", runs, failures)
	}

	if err := f.driver.Run(context.Background(), "bogus"); err == nil {
		t.Fatalf("expected unknown job error")
	}
}

func TestRunAttachesRunIDToLogs(t *testing.T) {
	f := newFixture(t, Config{})
	logger, buf := testutil.NewBufferLogger()
	f.driver.logger = logger

	if err := f.driver.Run(context.Background(), JobXG); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "run_id=run-1") || !strings.Contains(out, "job=xg") {
		t.Fatalf("expected run fields in logs, got %s", out)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	d := New(&testutil.StubProvider{}, testutil.NewMemoryStore(), nil, Config{}, nil, nil)
	if d.cfg.BackfillDays != defaultBackfillDays || d.cfg.BackfillInterval != defaultBackfillInterval {
		t.Fatalf("unexpected defaults %+v", d.cfg)
	}
	if d.newRunID() == "" {
		t.Fatalf("expected generated run id")
	}
}

func TestJobsFailWhenProviderUnavailable(t *testing.T) {
	d := New(testutil.UnavailableProvider{}, testutil.NewMemoryStore(), nil, Config{}, nil, metrics.NewRecorder())
	ctx := context.Background()

	for _, job := range []string{JobDownload, JobSchedule, JobTeams} {
		if err := d.Run(ctx, job); !errors.Is(err, providers.ErrProviderUnavailable) {
			t.Fatalf("%s: expected ErrProviderUnavailable, got %v", job, err)
		}
	}
}
