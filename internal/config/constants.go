package config

import "time"

const (
	envJob      = "PIPELINE_JOB"
	envProvider = "PROVIDER"

	envNHLWebBaseURL   = "NHLAPI_WEB_BASE_URL"
	envNHLStatsBaseURL = "NHLAPI_STATS_BASE_URL"
	envNHLTimeout      = "NHLAPI_TIMEOUT"
	envNHLMinInterval  = "NHLAPI_MIN_INTERVAL"
	envNHLRetries      = "NHLAPI_RETRY_ATTEMPTS"
	envNHLBackoff      = "NHLAPI_RETRY_BACKOFF"

	envStorageBackend = "STORAGE_BACKEND"
	envStoragePath    = "STORAGE_PATH"
	envBucket         = "DESTINATION_BUCKET"
	envS3Endpoint     = "S3_ENDPOINT"
	envAWSRegion      = "AWS_REGION"

	envRedisURL    = "REDIS_URL"
	envGameLogTTL  = "GAMELOG_CACHE_TTL"
	envPeriodSecs  = "PERIOD_SECONDS"
	envMinShots    = "MIN_SHOTS_COUNT"
	envRunMode     = "RUN_MODE"
	envRunInterval = "RUN_INTERVAL"
	envBackfill    = "BACKFILL_DAYS"
	envBackfillGap = "BACKFILL_INTERVAL"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultJob      = "download"
	defaultProvider = "fixture"

	defaultNHLTimeout = 10 * Duration(time.Second)
	// Upstream has no published quota; one request per 250ms keeps bursts polite.
	defaultNHLMinInterval = 250 * Duration(time.Millisecond)
	defaultNHLRetries     = 3
	defaultNHLBackoff     = 500 * Duration(time.Millisecond)

	defaultStorageBackend = "fs"
	defaultStoragePath    = "data"

	defaultGameLogTTL   = 6 * Duration(time.Hour)
	defaultPeriodSecs   = 1200
	defaultMinShots     = 10
	defaultRunMode      = "once"
	defaultRunInterval  = 6 * Duration(time.Hour)
	defaultBackfillDays = 7
	defaultBackfillGap  = 2 * Duration(time.Second)

	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
)

// Accepted enum values.
const (
	ProviderNHL     = "nhl"
	ProviderFixture = "fixture"

	StorageFS = "fs"
	StorageS3 = "s3"

	RunModeOnce   = "once"
	RunModeDaemon = "daemon"
	RunModeLambda = "lambda"
)

var knownJobs = []string{"download", "transform", "xg", "schedule", "teams", "backfill"}
