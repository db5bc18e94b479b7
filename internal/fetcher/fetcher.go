package fetcher

import (
	"context"
	"fmt"
	"net/http"

	apperrors "github.com/janiskrasemann/whisker/internal/errors"
)

const userAgent = "whisker/1.0 (+https://github.com/janiskrasemann/whisker)"

// get issues a GET request for a JSON resource. The caller closes the body.
func get(ctx context.Context, client *http.Client, endpoint string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	return client.Do(req)
}

// transportError tags err as a timeout when the HTTP client or the context
// gave up waiting, and wraps it with the operation name otherwise.
func transportError(op string, err error) error {
	if apperrors.Classify(err) == apperrors.KindTimeout {
		return apperrors.TimeoutError{Operation: op, Cause: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
