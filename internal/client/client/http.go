package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/linkdash/internal/logging"
	"github.com/google/uuid"
)

// HTTPClient talks to the REST API. It is safe for concurrent use; the bound
// token never changes after construction.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
	metrics *Metrics
	logger  logging.Logger
}

// New returns a client without a token. A nil httpClient means
// http.DefaultClient; metrics may be nil.
func New(baseURL string, httpClient *http.Client, metrics *Metrics, logger logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		metrics: metrics,
		logger:  logger,
	}
}

// WithToken returns a copy of c that authenticates with token.
func (c *HTTPClient) WithToken(token string) *HTTPClient {
	cp := *c
	cp.token = token
	return &cp
}

func (c *HTTPClient) Token() string { return c.token }

func (c *HTTPClient) BaseURL() string { return c.baseURL }

// do performs one call and hands a 2xx body to decode. Errors are always
// *NetworkError, *ApplicationError or wrap ErrInvalidRequest.
func (c *HTTPClient) do(ctx context.Context, ep Endpoint, params map[string]string, body any, decode func([]byte) error) error {
	target, err := ep.URL(c.baseURL, params)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s: encode body: %v", ErrInvalidRequest, ep.Name, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRequest, ep.Name, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	err = c.roundTrip(req, ep, decode)
	elapsed := time.Since(start)
	c.metrics.observe(ep.Name, outcomeOf(err), elapsed)

	if err != nil {
		c.logger.Debug(ctx, "api call failed", "endpoint", ep.Name, "request_id", requestID, "elapsed", elapsed, "err", err)
	} else {
		c.logger.Debug(ctx, "api call", "endpoint", ep.Name, "request_id", requestID, "elapsed", elapsed)
	}
	return err
}

func (c *HTTPClient) roundTrip(req *http.Request, ep Endpoint, decode func([]byte) error) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Endpoint: ep.Name, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Endpoint: ep.Name, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		appErr := &ApplicationError{Endpoint: ep.Name, StatusCode: resp.StatusCode}
		if msg, ok := extractMessage(data); ok {
			appErr.Message = msg
		} else {
			appErr.Message = GenericFailureMessage
			appErr.Generic = true
		}
		return appErr
	}

	if decode == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := decode(data); err != nil {
		return &NetworkError{Endpoint: ep.Name, Err: fmt.Errorf("malformed response: %w", err)}
	}
	return nil
}

// extractMessage looks for a display message in an error body: "message",
// then "error" as a string, then "error.message".
func extractMessage(data []byte) (string, bool) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return "", false
	}
	for _, key := range []string{"message", "error"} {
		raw, ok := body[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if strings.TrimSpace(s) != "" {
				return s, true
			}
			continue
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &nested); err == nil && strings.TrimSpace(nested.Message) != "" {
			return nested.Message, true
		}
	}
	return "", false
}

func decodeInto(out any) func([]byte) error {
	return func(data []byte) error {
		return json.Unmarshal(data, out)
	}
}

// decodeList accepts either a bare JSON array or an object wrapping the array
// under key. A missing key or null array yields an empty slice.
func decodeList[T any](key string, out *[]T) func([]byte) error {
	return func(data []byte) error {
		data = bytes.TrimSpace(data)
		if len(data) > 0 && data[0] == '[' {
			if err := json.Unmarshal(data, out); err != nil {
				return err
			}
		} else {
			var wrapped map[string]json.RawMessage
			if err := json.Unmarshal(data, &wrapped); err != nil {
				return err
			}
			if inner, ok := wrapped[key]; ok {
				if err := json.Unmarshal(inner, out); err != nil {
					return err
				}
			}
		}
		if *out == nil {
			*out = []T{}
		}
		return nil
	}
}
