package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/config"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/metrics"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/pipeline"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/testutil"
)

func testConfig(mode, job string) config.Config {
	return config.Config{
		Job:      job,
		Provider: config.ProviderFixture,
		Storage:  config.StorageConfig{Backend: config.StorageFS},
		Runner:   config.RunnerConfig{Mode: mode},
	}
}

func newTestApp(t *testing.T, cfg config.Config) (*App, *testutil.MemoryStore, *metrics.Recorder) {
	t.Helper()
	store := testutil.NewMemoryStore()
	recorder := metrics.NewRecorder()
	provider := &testutil.StubProvider{
		PlayByPlay: map[int64][]byte{testutil.GameID: []byte(testutil.SampleGameJSON)},
	}
	return newAppWithDeps(cfg, nil, recorder, provider, store, nil), store, recorder
}

type closingProvider struct {
	testutil.StubProvider
	closed bool
}

func (p *closingProvider) Close() { p.closed = true }

func TestShutdownClosesWrappedProvider(t *testing.T) {
	inner := &closingProvider{}
	wrapped := providers.NewRetryingProvider(inner, nil, nil, "stub", 1, time.Millisecond)
	a := newAppWithDeps(testConfig(config.RunModeOnce, pipeline.JobSchedule), nil, metrics.NewRecorder(), wrapped, testutil.NewMemoryStore(), nil)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inner.closed {
		t.Fatalf("expected shutdown to close the provider behind the retry wrapper")
	}
}

func TestRunOnceExecutesConfiguredJob(t *testing.T) {
	a, _, recorder := newTestApp(t, testConfig(config.RunModeOnce, pipeline.JobSchedule))
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runs, _ := recorder.JobRuns(pipeline.JobSchedule); runs != 1 {
		t.Fatalf("expected one schedule run, got %d", runs)
	}
}

func TestRunDaemonStopsOnCancel(t *testing.T) {
	a, _, recorder := newTestApp(t, testConfig(config.RunModeDaemon, pipeline.JobSchedule))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runs, _ := recorder.JobRuns(pipeline.JobSchedule); runs > 1 {
		t.Fatalf("expected at most the initial run, got %d", runs)
	}
}

func TestRunLambdaRegistersHandler(t *testing.T) {
	var registered any
	orig := lambdaStart
	lambdaStart = func(h any) { registered = h }
	defer func() { lambdaStart = orig }()

	a, _, _ := newTestApp(t, testConfig(config.RunModeLambda, pipeline.JobTransform))
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registered == nil {
		t.Fatalf("expected a lambda handler to be registered")
	}
}

func TestHandleS3EventTransformsRawGames(t *testing.T) {
	a, store, _ := newTestApp(t, testConfig(config.RunModeLambda, pipeline.JobTransform))
	ctx := context.Background()
	_ = store.Put(ctx, "games/2023/regular/2023020204.json", []byte(testutil.SampleGameJSON))

	event := events.S3Event{Records: []events.S3EventRecord{
		{S3: events.S3Entity{Object: events.S3Object{Key: "games/2023/regular/2023020204.json"}}},
		{S3: events.S3Entity{Object: events.S3Object{Key: "shift-charts/2023/regular/2023020204.json"}}},
	}}
	if err := a.HandleS3Event(ctx, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := store.Exists(ctx, "shots/2023/regular/2023020204.parquet"); !ok {
		t.Fatalf("expected shots table to be written")
	}
	if ok, _ := store.Exists(ctx, "manifests/2023/regular/2023020204.json"); !ok {
		t.Fatalf("expected manifest to be written")
	}
}

func TestHandleS3EventIgnoresItsOwnSummaryTables(t *testing.T) {
	a, store, _ := newTestApp(t, testConfig(config.RunModeLambda, pipeline.JobTransform))
	ctx := context.Background()
	_ = store.Put(ctx, "games/2023/regular/2023020204.json", []byte(testutil.SampleGameJSON))

	if _, err := a.driver.TransformGame(ctx, "games/2023/regular/2023020204.json"); err != nil {
		t.Fatalf("transform: %v", err)
	}
	summary := "games/2023/regular/2023020204.parquet"
	if ok, _ := store.Exists(ctx, summary); !ok {
		t.Fatalf("expected summary table under the raw folder")
	}

	event := events.S3Event{Records: []events.S3EventRecord{
		{S3: events.S3Entity{Object: events.S3Object{Key: summary}}},
	}}
	if err := a.HandleS3Event(ctx, event); err != nil {
		t.Fatalf("expected summary table notification to be ignored, got %v", err)
	}
}

func TestHandleS3EventReportsFailures(t *testing.T) {
	a, store, _ := newTestApp(t, testConfig(config.RunModeLambda, pipeline.JobTransform))
	ctx := context.Background()
	_ = store.Put(ctx, "games/2023/regular/2023020206.json", []byte("{"))

	event := events.S3Event{Records: []events.S3EventRecord{
		{S3: events.S3Entity{Object: events.S3Object{Key: "games/2023/regular/2023020206.json"}}},
		{S3: events.S3Entity{Object: events.S3Object{Key: "games/%zz.json"}}},
	}}
	err := a.HandleS3Event(ctx, event)
	if err == nil {
		t.Fatalf("expected joined errors")
	}
}

func TestHandleS3EventWithoutRecordsRunsJob(t *testing.T) {
	a, _, recorder := newTestApp(t, testConfig(config.RunModeLambda, pipeline.JobSchedule))
	if err := a.HandleS3Event(context.Background(), events.S3Event{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runs, _ := recorder.JobRuns(pipeline.JobSchedule); runs != 1 {
		t.Fatalf("expected scheduled invocation to run the job, got %d runs", runs)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig("cron", pipeline.JobSchedule)
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestNewWiresFilesystemPipeline(t *testing.T) {
	cfg := testConfig(config.RunModeOnce, pipeline.JobTeams)
	cfg.Storage.Path = t.TempDir()
	a, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
}

func TestBuildMetricsFallsBackOnSetupError(t *testing.T) {
	orig := metricsSetup
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("boom")
	}
	defer func() { metricsSetup = orig }()

	rec, handler, stop := buildMetrics(context.Background(), config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil)
	if rec == nil || handler != nil || stop != nil {
		t.Fatalf("expected plain recorder without handler")
	}
}

func TestStartOpsCreatesServerWhenEnabled(t *testing.T) {
	cfg := testConfig(config.RunModeOnce, pipeline.JobSchedule)
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "0"}
	a, _, _ := newTestApp(t, cfg)
	a.metricsHandler = http.NewServeMux()

	a.startOps()
	defer a.shutdown()
	if a.metricsServer == nil || a.metricsServer.Addr() != ":0" {
		t.Fatalf("expected metrics server on :0, got %v", a.metricsServer)
	}
}

func TestStartOpsSkipsWhenDisabled(t *testing.T) {
	a, _, _ := newTestApp(t, testConfig(config.RunModeOnce, pipeline.JobSchedule))
	a.metricsHandler = http.NewServeMux()
	a.startOps()
	if a.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}
