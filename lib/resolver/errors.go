package resolver

import "errors"

var (
	ErrNotFound       = errors.New("no image matches query")
	ErrInvalidPattern = errors.New("invalid name pattern")
)

// ProviderError reports a failed catalog query. The underlying cause is
// carried verbatim and reachable through Unwrap, so callers can still test
// for context.Canceled, provider throttling errors, and the like.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "catalog query failed: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
