package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/aws/aws-lambda-go/events"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
)

// HandleS3Event transforms every raw game named by an object-created notification.
// Other keys are ignored. An event without records (a scheduled invocation) runs
// the configured job instead.
func (a *App) HandleS3Event(ctx context.Context, event events.S3Event) error {
	if len(event.Records) == 0 {
		return a.driver.Run(ctx, a.cfg.Job)
	}

	var errs []error
	for _, record := range event.Records {
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			errs = append(errs, fmt.Errorf("decoding key %q: %w", record.S3.Object.Key, err))
			continue
		}
		if !storage.IsRawGameKey(key) {
			logging.Info(a.logger, "ignoring object", logging.FieldKey, key)
			continue
		}
		if _, err := a.driver.TransformGame(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("transforming %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}
