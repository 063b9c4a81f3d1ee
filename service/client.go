package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/place-labs/place-proxy-service/batch"
	"github.com/place-labs/place-proxy-service/clients/upstream"
)

const (
	PlacesPath      = "/v1/places"
	HealthcheckPath = "/healthcheck"
)

// ProxyServiceClient provides a client
// for making requests and decoding responses
// to the place proxy service API
type ProxyServiceClient struct {
	*http.Client
	config ProxyServiceClientConfig
}

// ProxyServiceClientConfig wraps values used to
// create a new ProxyServiceClient
type ProxyServiceClientConfig struct {
	ProxyServiceHostname string
}

// NewProxyServiceClient creates a new ProxyServiceClient
// using the provided config, returning the client and error (if any)
func NewProxyServiceClient(config ProxyServiceClientConfig) (*ProxyServiceClient, error) {
	httpClient := &http.Client{}

	return &ProxyServiceClient{
		Client: httpClient,
		config: config,
	}, nil
}

// PlacesResponse wraps the status code and decoded body returned
// by calls to `PlacesPath`
type PlacesResponse struct {
	StatusCode int
	Data       []batch.Record
	Errors     []batch.Failure
	Message    string
	Error      string
}

// GetPlaces calls `PlacesPath` with the provided ids as a single
// comma-delimited placeIds parameter, returning the decoded aggregate
// response and error (if any)
func (c *ProxyServiceClient) GetPlaces(ctx context.Context, placeIDs []string) (PlacesResponse, error) {
	requestURL := fmt.Sprintf("%s%s?%s=%s", c.config.ProxyServiceHostname, PlacesPath, upstream.PlaceIDsQueryKey, url.QueryEscape(strings.Join(placeIDs, ",")))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)

	if err != nil {
		return PlacesResponse{}, err
	}

	response, err := c.Do(request)

	if err != nil {
		return PlacesResponse{}, err
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)

	if err != nil {
		return PlacesResponse{StatusCode: response.StatusCode}, err
	}

	var decoded struct {
		Data    []batch.Record  `json:"data"`
		Errors  []batch.Failure `json:"errors"`
		Message string          `json:"message"`
		Error   string          `json:"error"`
	}

	if err := json.Unmarshal(body, &decoded); err != nil {
		return PlacesResponse{StatusCode: response.StatusCode}, err
	}

	return PlacesResponse{
		StatusCode: response.StatusCode,
		Data:       decoded.Data,
		Errors:     decoded.Errors,
		Message:    decoded.Message,
		Error:      decoded.Error,
	}, nil
}

// GetHealthcheck calls `HealthcheckPath`, returning the response status
// code and error (if any)
func (c *ProxyServiceClient) GetHealthcheck(ctx context.Context) (int, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.ProxyServiceHostname+HealthcheckPath, nil)

	if err != nil {
		return 0, err
	}

	response, err := c.Do(request)

	if err != nil {
		return 0, err
	}

	defer response.Body.Close()

	return response.StatusCode, nil
}
