package osmrouter

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNodeNotFound is returned when there are no routable nodes in the grid cell of a query point
	ErrNodeNotFound = errors.New("No routable nodes near the point")
	// ErrNoPath is returned when no sequence of allowed edges connects two nodes
	ErrNoPath = errors.New("There is no path between the nodes")
	// ErrSearchLimit is returned when path search exceeds configured number of iterations
	ErrSearchLimit = errors.New("Path search iterations limit exceeded")
)

// LoadError describes malformed or incomplete map document.
// Map is never returned partially when LoadError occurs.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Can't load map: %s", e.Reason)
	}
	return fmt.Sprintf("Can't load map: %s: %s", e.Reason, e.Err.Error())
}

// Unwrap returns underlying error (if any)
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Cause is for github.com/pkg/errors compatibility
func (e *LoadError) Cause() error {
	return e.Err
}

func loadError(err error, format string, args ...interface{}) error {
	return &LoadError{
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

// IsLoadError reports whether err (or any error it wraps) is LoadError
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}
