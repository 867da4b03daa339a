package store

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"school-stats/models"
)

// Source provides the raw dataset entries.
type Source interface {
	Entries(ctx context.Context) ([]models.RawEntry, error)
	String() string
}

// SourceOptions carries the settings needed to reach remote sources.
type SourceOptions struct {
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// OpenSource picks a Source for uri:
//
//	s3://bucket/key      object in S3
//	mysql://<dsn>        school_statistics table in MySQL
//	sqlite3://<path>     school_statistics table in SQLite
//	anything else        JSON file path
func OpenSource(uri string, opts SourceOptions) (Source, error) {
	switch {
	case strings.HasPrefix(uri, "s3://"):
		bucket, key, _ := strings.Cut(strings.TrimPrefix(uri, "s3://"), "/")
		if bucket == "" || key == "" {
			return nil, &DataSourceError{Source: uri, cause: errors.New("expected s3://bucket/key")}
		}
		client, err := NewS3Client(opts.AWSRegion, opts.AWSAccessKeyID, opts.AWSSecretAccessKey)
		if err != nil {
			return nil, &DataSourceError{Source: uri, cause: err}
		}
		return S3Source{Client: client, Bucket: bucket, Key: key}, nil
	case strings.HasPrefix(uri, "mysql://"):
		return SQLSource{DriverName: "mysql", DSN: strings.TrimPrefix(uri, "mysql://")}, nil
	case strings.HasPrefix(uri, "sqlite3://"):
		return SQLSource{DriverName: "sqlite3", DSN: strings.TrimPrefix(uri, "sqlite3://")}, nil
	default:
		return FileSource{Path: uri}, nil
	}
}

// FileSource reads a JSON array of entries from a file. Files ending in .gz
// or .zst are decompressed.
type FileSource struct {
	Path string
}

func (s FileSource) String() string { return s.Path }

func (s FileSource) Entries(_ context.Context) ([]models.RawEntry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	return readEntries(s.Path, f)
}

// ReaderSource reads a JSON array of entries from R. Name selects
// decompression like a file name does.
type ReaderSource struct {
	Name string
	R    io.Reader
}

func (s ReaderSource) String() string { return s.Name }

func (s ReaderSource) Entries(_ context.Context) ([]models.RawEntry, error) {
	return readEntries(s.Name, s.R)
}

func readEntries(name string, r io.Reader) ([]models.RawEntry, error) {
	rc, err := decompress(name, r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var entries []models.RawEntry
	if err := json.NewDecoder(rc).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "decode entries")
	}
	return entries, nil
}

func decompress(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		return zr, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}
