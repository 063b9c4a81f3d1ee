package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

var (
	ValidLogLevels = [4]string{"TRACE", "DEBUG", "INFO", "ERROR"}
)

// Validate validates the provided config
// returning a list of errors that can be unwrapped with `errors.Unwrap`
// or nil if the config is valid
func Validate(config Config) error {
	var validLogLevel bool
	var allErrs error

	for _, validLevel := range ValidLogLevels {
		if config.LogLevel == validLevel {
			validLogLevel = true
			break
		}
	}

	if !validLogLevel {
		allErrs = fmt.Errorf("invalid %s specified %s, supported values are %v", LOG_LEVEL_ENVIRONMENT_KEY, config.LogLevel, ValidLogLevels)
	}

	_, err := strconv.Atoi(config.ProxyServicePort)

	if err != nil {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s", PROXY_SERVICE_PORT_ENVIRONMENT_KEY, config.ProxyServicePort))
	}

	upstreamURL, err := url.Parse(config.UpstreamBaseURL)

	if err != nil || config.UpstreamBaseURL == "" || !upstreamURL.IsAbs() {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s, must be an absolute url", UPSTREAM_BASE_URL_ENVIRONMENT_KEY, config.UpstreamBaseURL))
	}

	if config.SessionCookieName == "" {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified, must not be empty", SESSION_COOKIE_NAME_ENVIRONMENT_KEY))
	}

	if config.BatchSize < 1 {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %d, must be greater than zero", BATCH_SIZE_ENVIRONMENT_KEY, config.BatchSize))
	}

	if config.HTTPClientTimeoutSeconds < 1 {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %d, must be greater than zero", HTTP_CLIENT_TIMEOUT_SECONDS_ENVIRONMENT_KEY, config.HTTPClientTimeoutSeconds))
	}

	return allErrs
}
