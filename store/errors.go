package store

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Table.Get for ids that are not in the table.
// Entries dropped as inactive at load time are reported the same way.
var ErrNotFound = errors.New("school not found")

// DataSourceError reports a dataset that could not be read or is malformed.
// A service cannot start without a valid dataset.
//
// The underlying error can be accessed via errors.Unwrap.
type DataSourceError struct {
	Source string
	cause  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Source, e.cause)
}

func (e *DataSourceError) Unwrap() error { return e.cause }
