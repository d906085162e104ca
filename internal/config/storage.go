package config

import "fmt"

// StorageConfig selects where raw documents and tables are written.
type StorageConfig struct {
	Backend  string
	Path     string
	Bucket   string
	Endpoint string
	Region   string
}

// CacheConfig points the game-log cache at Redis; empty RedisURL keeps it in process.
type CacheConfig struct {
	RedisURL string
	TTL      Duration
}

func loadStorage() StorageConfig {
	return StorageConfig{
		Backend:  envOrDefault(envStorageBackend, defaultStorageBackend),
		Path:     envOrDefault(envStoragePath, defaultStoragePath),
		Bucket:   envOrDefault(envBucket, ""),
		Endpoint: envOrDefault(envS3Endpoint, ""),
		Region:   envOrDefault(envAWSRegion, ""),
	}
}

func (s StorageConfig) validate() error {
	switch s.Backend {
	case StorageFS:
		return nil
	case StorageS3:
		if s.Bucket == "" {
			return fmt.Errorf("%s required for the s3 backend", envBucket)
		}
		return nil
	default:
		return fmt.Errorf("%s: unknown backend %q", envStorageBackend, s.Backend)
	}
}
