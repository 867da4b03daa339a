package utils

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// InvalidParameterError reports a query parameter that could not be parsed.
type InvalidParameterError struct {
	Name  string
	Value string
	cause error
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s", e.Value, e.Name)
}

func (e *InvalidParameterError) Unwrap() error { return e.cause }

// ParamReader reads typed query parameters. In lenient mode an unparseable
// value is logged and treated as absent; in strict mode the first one is
// kept and reported by Err.
type ParamReader struct {
	values url.Values
	strict bool
	err    error
}

func NewParamReader(r *http.Request, strict bool) *ParamReader {
	return &ParamReader{values: r.URL.Query(), strict: strict}
}

// Err returns the first invalid parameter seen in strict mode.
func (p *ParamReader) Err() error { return p.err }

func (p *ParamReader) String(name string) string {
	return p.values.Get(name)
}

// StringOr returns def when the parameter is absent or empty.
func (p *ParamReader) StringOr(name, def string) string {
	if v := p.values.Get(name); v != "" {
		return v
	}
	return def
}

// Float returns nil when the parameter is absent, empty or invalid.
// Non-finite values are invalid.
func (p *ParamReader) Float(name string) *float64 {
	raw := strings.TrimSpace(p.values.Get(name))
	if raw == "" {
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		err = errors.New("not a finite number")
	}
	if err != nil {
		p.invalid(name, raw, err)
		return nil
	}
	return &f
}

// Int returns def when the parameter is absent, empty or invalid.
func (p *ParamReader) Int(name string, def int) int {
	raw := strings.TrimSpace(p.values.Get(name))
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		p.invalid(name, raw, err)
		return def
	}
	return n
}

func (p *ParamReader) invalid(name, value string, cause error) {
	err := &InvalidParameterError{Name: name, Value: value, cause: cause}
	if !p.strict {
		log.WithError(err).Debug("ignoring query parameter")
		return
	}
	if p.err == nil {
		p.err = err
	}
}
