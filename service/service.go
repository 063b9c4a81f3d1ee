// package service provides functions and methods
// for creating and running the api of the place proxy service
package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/place-labs/place-proxy-service/clients/upstream"
	"github.com/place-labs/place-proxy-service/config"
	"github.com/place-labs/place-proxy-service/logging"
)

// ProxyService represents an instance of the place proxy service API
type ProxyService struct {
	server         *http.Server
	upstreamClient *upstream.Client
	batchSize      int
	*logging.ServiceLogger
}

// New returns a new ProxyService with the specified config and error (if any)
func New(config config.Config, serviceLogger *logging.ServiceLogger) (ProxyService, error) {
	upstreamClient, err := upstream.NewClient(upstream.ClientConfig{
		UpstreamBaseURL:    config.UpstreamBaseURL,
		SessionCookieName:  config.SessionCookieName,
		SessionCookieValue: config.SessionCookieValue,
		Timeout:            time.Duration(config.HTTPClientTimeoutSeconds) * time.Second,
	}, serviceLogger)

	if err != nil {
		return ProxyService{}, err
	}

	service := ProxyService{
		upstreamClient: upstreamClient,
		batchSize:      config.BatchSize,
		ServiceLogger:  serviceLogger,
	}

	// create an http router for registering handlers for a given route
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/places", createPlaceBatchHandler(&service))
	mux.HandleFunc("/healthcheck", createHealthcheckHandler(&service))
	mux.HandleFunc("/servicecheck", createServicecheckHandler(&service))

	// wrap the router in the service middleware, from the inside out
	var handler http.Handler = mux
	handler = createCORSMiddleware(handler, config)
	handler = createRequestLoggingMiddleware(handler, serviceLogger)

	// create an http server for the caller to start at their own discretion
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.ProxyServicePort),
		Handler: handler,
	}

	service.server = server

	return service, nil
}

// Run runs the proxy service, returning error (if any) in the event
// the proxy service stops
func (p *ProxyService) Run() error {
	return p.server.ListenAndServe()
}
