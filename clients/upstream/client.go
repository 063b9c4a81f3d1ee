// package upstream provides a client for fetching place records from the
// upstream place details endpoint in bounded-size authenticated batches
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/place-labs/place-proxy-service/batch"
	"github.com/place-labs/place-proxy-service/logging"
)

const (
	// PlaceIDsQueryKey is the query parameter carrying place identifiers,
	// repeated once per identifier, on both the inbound and upstream request
	PlaceIDsQueryKey = "placeIds"

	acceptHeaderKey   = "Accept"
	acceptHeaderValue = "application/json"
)

// Client makes authenticated batch requests
// to the upstream place details endpoint
type Client struct {
	*http.Client
	config ClientConfig
	logger *logging.ServiceLogger
}

// ClientConfig wraps values used to
// create a new Client
type ClientConfig struct {
	UpstreamBaseURL    string
	SessionCookieName  string
	SessionCookieValue string
	Timeout            time.Duration
}

// NewClient creates a new Client using the provided config,
// returning the client and error (if any)
func NewClient(config ClientConfig, logger *logging.ServiceLogger) (*Client, error) {
	if _, err := url.Parse(config.UpstreamBaseURL); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: config.Timeout}

	return &Client{
		Client: httpClient,
		config: config,
		logger: logger,
	}, nil
}

// FetchBatch makes one authenticated GET request to the upstream endpoint
// for every identifier in the batch, returning the records parsed from a
// 2xx response or a failure attributed to the batch's starting offset.
// Upstream errors are captured as values, never returned as an error.
func (c *Client) FetchBatch(ctx context.Context, batchIndex int, identifiers []string) batch.Result {
	request, err := c.createBatchRequest(ctx, identifiers)

	if err != nil {
		return transportFailure(batchIndex, err)
	}

	response, err := c.Do(request)

	if err != nil {
		return transportFailure(batchIndex, err)
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)

	if err != nil {
		return transportFailure(batchIndex, err)
	}

	if !(response.StatusCode >= 200 && response.StatusCode <= 299) {
		// non-2xx bodies are plain text details, not JSON
		return batch.NewFailure(batchIndex, response.StatusCode, http.StatusText(response.StatusCode), string(body))
	}

	items, err := decodeRecords(body)

	if err != nil {
		return transportFailure(batchIndex, err)
	}

	return batch.NewSuccess(items)
}

// createBatchRequest builds the upstream GET request for one batch,
// encoding every identifier as a repeated placeIds query parameter and
// attaching the session credential cookie. The cookie is sent with
// whatever value was configured, including an empty one, so an unset
// credential fails upstream rather than locally.
func (c *Client) createBatchRequest(ctx context.Context, identifiers []string) (*http.Request, error) {
	requestURL, err := url.Parse(c.config.UpstreamBaseURL)

	if err != nil {
		return nil, err
	}

	query := requestURL.Query()

	for _, identifier := range identifiers {
		query.Add(PlaceIDsQueryKey, identifier)
	}

	requestURL.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)

	if err != nil {
		return nil, err
	}

	request.Header.Set(acceptHeaderKey, acceptHeaderValue)
	request.AddCookie(&http.Cookie{
		Name:  c.config.SessionCookieName,
		Value: c.config.SessionCookieValue,
	})

	return request, nil
}

// decodeRecords parses a 2xx upstream response body, treating a JSON
// array as one record per element and a single JSON value as a
// one-element result
func decodeRecords(body []byte) ([]batch.Record, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []batch.Record

		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}

		return records, nil
	}

	var record batch.Record

	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, err
	}

	return []batch.Record{record}, nil
}

// transportFailure normalizes connection, timeout and parse errors to a
// 500 failure carrying the underlying error message as details
func transportFailure(batchIndex int, err error) batch.Result {
	return batch.NewFailure(batchIndex, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err.Error())
}
