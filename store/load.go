package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Load reads src and builds the table. Every failure is a *DataSourceError.
func Load(ctx context.Context, src Source) (*Table, error) {
	start := time.Now()

	entries, err := src.Entries(ctx)
	if err != nil {
		return nil, &DataSourceError{Source: src.String(), cause: err}
	}

	t, err := Build(entries)
	if err != nil {
		return nil, &DataSourceError{Source: src.String(), cause: err}
	}

	log.WithFields(log.Fields{
		"source":  src.String(),
		"entries": len(entries),
		"schools": t.Len(),
		"dropped": t.Dropped(),
		"took":    time.Since(start),
	}).Info("dataset loaded")

	return t, nil
}
