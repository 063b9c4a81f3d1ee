// package config provides functions and values
// for reading and validating place proxy service configuration
package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel                 string
	ProxyServicePort         string
	UpstreamBaseURL          string
	SessionCookieName        string
	SessionCookieValue       string
	BatchSize                int
	CORSAllowedOrigin        string
	HTTPClientTimeoutSeconds int
}

const (
	LOG_LEVEL_ENVIRONMENT_KEY                   = "LOG_LEVEL"
	DEFAULT_LOG_LEVEL                           = "INFO"
	PROXY_SERVICE_PORT_ENVIRONMENT_KEY          = "PROXY_SERVICE_PORT"
	DEFAULT_PROXY_SERVICE_PORT                  = "7777"
	UPSTREAM_BASE_URL_ENVIRONMENT_KEY           = "UPSTREAM_BASE_URL"
	SESSION_COOKIE_NAME_ENVIRONMENT_KEY         = "SESSION_COOKIE_NAME"
	DEFAULT_SESSION_COOKIE_NAME                 = ".SESSIONCOOKIENAME"
	SESSION_COOKIE_VALUE_ENVIRONMENT_KEY        = "SESSION_COOKIE_VALUE"
	BATCH_SIZE_ENVIRONMENT_KEY                  = "BATCH_SIZE"
	DEFAULT_BATCH_SIZE                          = 50
	CORS_ALLOWED_ORIGIN_ENVIRONMENT_KEY         = "CORS_ALLOWED_ORIGIN"
	DEFAULT_CORS_ALLOWED_ORIGIN                 = "*"
	HTTP_CLIENT_TIMEOUT_SECONDS_ENVIRONMENT_KEY = "HTTP_CLIENT_TIMEOUT_SECONDS"
	DEFAULT_HTTP_CLIENT_TIMEOUT_SECONDS         = 30
)

// EnvOrDefault fetches an environment variable value, or if not set returns the fallback value
func EnvOrDefault(key string, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// EnvOrDefaultInt fetches an environment variable value as an integer, or if not set
// or not parseable as an integer returns the fallback value
func EnvOrDefaultInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fallback
		}
		return parsed
	}
	return fallback
}

// ReadConfig attempts to parse service config from environment values
// the returned config may be invalid and should be validated via the `Validate`
// function of the Config package before use
func ReadConfig() Config {
	return Config{
		LogLevel:                 EnvOrDefault(LOG_LEVEL_ENVIRONMENT_KEY, DEFAULT_LOG_LEVEL),
		ProxyServicePort:         EnvOrDefault(PROXY_SERVICE_PORT_ENVIRONMENT_KEY, DEFAULT_PROXY_SERVICE_PORT),
		UpstreamBaseURL:          os.Getenv(UPSTREAM_BASE_URL_ENVIRONMENT_KEY),
		SessionCookieName:        EnvOrDefault(SESSION_COOKIE_NAME_ENVIRONMENT_KEY, DEFAULT_SESSION_COOKIE_NAME),
		SessionCookieValue:       os.Getenv(SESSION_COOKIE_VALUE_ENVIRONMENT_KEY),
		BatchSize:                EnvOrDefaultInt(BATCH_SIZE_ENVIRONMENT_KEY, DEFAULT_BATCH_SIZE),
		CORSAllowedOrigin:        EnvOrDefault(CORS_ALLOWED_ORIGIN_ENVIRONMENT_KEY, DEFAULT_CORS_ALLOWED_ORIGIN),
		HTTPClientTimeoutSeconds: EnvOrDefaultInt(HTTP_CLIENT_TIMEOUT_SECONDS_ENVIRONMENT_KEY, DEFAULT_HTTP_CLIENT_TIMEOUT_SECONDS),
	}
}
