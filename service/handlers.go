package service

import (
	"fmt"
	"net/http"

	"github.com/place-labs/place-proxy-service/batch"
	"github.com/place-labs/place-proxy-service/clients/upstream"
)

// createPlaceBatchHandler creates the handler for the batched place details
// endpoint. It normalizes the placeIds parameter into a validated identifier
// list, partitions the list into bounded-size batches, fetches every batch
// from upstream, and merges the per-batch outcomes into one response per
// the partial success policy: every record that was fetched is returned,
// with failed batches attached as metadata, unless every batch failed.
func createPlaceBatchHandler(service *ProxyService) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)

			return
		}

		identifiers, err := batch.Normalize(rawPlaceIDsParam(r))

		if err != nil {
			service.Debug().Msg(fmt.Sprintf("rejecting request with invalid placeIds parameter: %s", err))

			if marshalErr := MarshalJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()}); marshalErr != nil {
				service.Error().Msg(fmt.Sprintf("error %s encoding validation error response", marshalErr))
			}

			return
		}

		batches := batch.Partition(identifiers, service.batchSize)

		service.Debug().Msg(fmt.Sprintf("fetching %d place ids in %d batches", len(identifiers), len(batches)))

		results := service.upstreamClient.FetchBatches(r.Context(), batches)

		status, body := batch.Aggregate(results)

		if err := MarshalJSONResponse(w, status, body); err != nil {
			service.Error().Msg(fmt.Sprintf("error %s encoding %+v to json", err, body))
		}
	}
}

// rawPlaceIDsParam extracts the placeIds query parameter in whatever shape
// the caller provided it: absent, a single delimited string, or a repeated
// parameter list
func rawPlaceIDsParam(r *http.Request) interface{} {
	values := r.URL.Query()[upstream.PlaceIDsQueryKey]

	switch len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	default:
		return []string(values)
	}
}

// createHealthcheckHandler creates a health check handler function that
// will respond 200 ok if the proxy service is functioning as expected.
// Upstream reachability is deliberately not probed: the service stays in
// rotation even when upstream is down, surfacing upstream failures
// per-batch instead.
func createHealthcheckHandler(service *ProxyService) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		service.Debug().Msg("/healthcheck called")

		w.WriteHeader(http.StatusOK)

		w.Write([]byte("proxy service is healthy"))
	}
}

// createServicecheckHandler creates a service check handler function that
// will respond 200 ok if the proxy service is running
func createServicecheckHandler(service *ProxyService) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		service.Debug().Msg("/servicecheck called")

		w.WriteHeader(http.StatusOK)

		w.Write([]byte("proxy service is in service"))
	}
}
