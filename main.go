// package main reads & validates configuration for the place proxy service
// and if the config is valid starts and monitors an instance of the proxy service
package main

import (
	"errors"
	"fmt"

	"github.com/place-labs/place-proxy-service/config"
	"github.com/place-labs/place-proxy-service/logging"
	"github.com/place-labs/place-proxy-service/service"
)

var (
	serviceConfig config.Config
	serviceLogger logging.ServiceLogger
)

func init() {
	serviceConfig = config.ReadConfig()

	err := config.Validate(serviceConfig)

	if err != nil {
		panic(err)
	}

	serviceLogger, err = logging.New(serviceConfig.LogLevel)

	if err != nil {
		panic(err)
	}
}

func main() {
	serviceLogger.Debug().Msg(fmt.Sprintf("starting place proxy on port %s for upstream %s with batch size %d", serviceConfig.ProxyServicePort, serviceConfig.UpstreamBaseURL, serviceConfig.BatchSize))

	if serviceConfig.SessionCookieValue == "" {
		// fail open: upstream calls are still attempted and will fail there
		serviceLogger.Warn().Msg(fmt.Sprintf("no %s set, upstream requests will be unauthenticated", config.SESSION_COOKIE_VALUE_ENVIRONMENT_KEY))
	}

	service, err := service.New(serviceConfig, &serviceLogger)

	if err != nil {
		serviceLogger.Panic().Msg(fmt.Sprintf("%v", errors.Unwrap(err)))
	}

	service.Run()
}
