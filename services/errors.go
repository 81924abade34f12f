package services

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Failure classes shared by both provider clients. Callers at the HTTP
// boundary map these to an empty result set plus a user-facing reason; they
// never escape into aggregation or storage logic.
var (
	ErrMalformedPayload = errors.New("malformed provider payload")
	ErrTimeout          = errors.New("provider request timed out")
	ErrConnection       = errors.New("unable to reach provider")
)

// APIError is a non-success HTTP response from a nutrition provider.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider API error %d", e.Status)
}

// classifyTransportError folds the zoo of net/url errors returned by the
// HTTP client into the two network failure classes above.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}
