package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/place-labs/place-proxy-service/batch"
	"github.com/place-labs/place-proxy-service/clients/upstream"
	"github.com/place-labs/place-proxy-service/logging"
	"github.com/stretchr/testify/require"
)

// placesBody covers every body shape the places endpoint can produce
type placesBody struct {
	Data    []json.RawMessage `json:"data"`
	Errors  []batch.Failure   `json:"errors"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
}

func newTestService(t *testing.T, upstreamBaseURL string, batchSize int) *ProxyService {
	logger, err := logging.New("ERROR")
	require.NoError(t, err)

	upstreamClient, err := upstream.NewClient(upstream.ClientConfig{
		UpstreamBaseURL:    upstreamBaseURL,
		SessionCookieName:  ".SESSIONCOOKIENAME",
		SessionCookieValue: "test-token",
		Timeout:            5 * time.Second,
	}, &logger)
	require.NoError(t, err)

	return &ProxyService{
		upstreamClient: upstreamClient,
		batchSize:      batchSize,
		ServiceLogger:  &logger,
	}
}

// echoUpstream answers every batch request with one record per requested id
func echoUpstream(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identifiers := r.URL.Query()[upstream.PlaceIDsQueryKey]

		records := make([]string, 0, len(identifiers))
		for _, identifier := range identifiers {
			records = append(records, fmt.Sprintf(`{"placeId":%s}`, identifier))
		}

		w.Write([]byte("[" + strings.Join(records, ",") + "]"))
	}))
}

func getPlaces(t *testing.T, service *ProxyService, target string) (int, placesBody) {
	handler := createPlaceBatchHandler(service)

	request := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()

	handler(recorder, request)

	var body placesBody

	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	}

	return recorder.Code, body
}

func TestUnitTestPlaceBatchHandlerReturnsRecordsInOrder(t *testing.T) {
	upstreamServer := echoUpstream(t)
	defer upstreamServer.Close()

	service := newTestService(t, upstreamServer.URL, 50)

	status, body := getPlaces(t, service, "/v1/places?placeIds=1,2,3")

	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Data, 3)

	for i, record := range body.Data {
		require.JSONEq(t, fmt.Sprintf(`{"placeId":%d}`, i+1), string(record))
	}

	require.Empty(t, body.Errors)
	require.Empty(t, body.Message)
}

func TestUnitTestPlaceBatchHandlerAcceptsRepeatedParameter(t *testing.T) {
	upstreamServer := echoUpstream(t)
	defer upstreamServer.Close()

	service := newTestService(t, upstreamServer.URL, 50)

	status, body := getPlaces(t, service, "/v1/places?placeIds=1&placeIds=2")

	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Data, 2)
}

func TestUnitTestPlaceBatchHandlerRejectsInvalidInput(t *testing.T) {
	upstreamServer := echoUpstream(t)
	defer upstreamServer.Close()

	service := newTestService(t, upstreamServer.URL, 50)

	testCases := []struct {
		name          string
		target        string
		expectedError string
	}{
		{
			name:          "missing parameter",
			target:        "/v1/places",
			expectedError: "Missing placeIds parameter.",
		},
		{
			name:          "empty parameter",
			target:        "/v1/places?placeIds=",
			expectedError: "Missing placeIds parameter.",
		},
		{
			name:          "no valid identifiers",
			target:        "/v1/places?placeIds=abc,def",
			expectedError: "No valid place IDs provided.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := getPlaces(t, service, tc.target)

			require.Equal(t, http.StatusBadRequest, status)
			require.Equal(t, tc.expectedError, body.Error)
		})
	}
}

func TestUnitTestPlaceBatchHandlerRejectsNonGetMethods(t *testing.T) {
	service := newTestService(t, "http://localhost:0", 50)

	handler := createPlaceBatchHandler(service)

	request := httptest.NewRequest(http.MethodPost, "/v1/places?placeIds=1", nil)
	recorder := httptest.NewRecorder()

	handler(recorder, request)

	require.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestUnitTestPlaceBatchHandlerAllBatchesFailed(t *testing.T) {
	upstreamServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))
	defer upstreamServer.Close()

	service := newTestService(t, upstreamServer.URL, 50)

	status, body := getPlaces(t, service, "/v1/places?placeIds=1,2")

	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, batch.MessageAllRequestsFailed, body.Error)
	require.Equal(t, []batch.Failure{
		{
			BatchIndex: 0,
			Status:     http.StatusNotFound,
			StatusText: "Not Found",
			Details:    "not found",
		},
	}, body.Errors)
}

func TestUnitTestPlaceBatchHandlerPartialFailure(t *testing.T) {
	// succeed for the first batch, fail the batch starting at identifier 50
	upstreamServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identifiers := r.URL.Query()[upstream.PlaceIDsQueryKey]

		if identifiers[0] == "50" {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream hiccup"))

			return
		}

		records := make([]string, 0, len(identifiers))
		for _, identifier := range identifiers {
			records = append(records, fmt.Sprintf(`{"placeId":%s}`, identifier))
		}

		w.Write([]byte("[" + strings.Join(records, ",") + "]"))
	}))
	defer upstreamServer.Close()

	service := newTestService(t, upstreamServer.URL, 50)

	identifiers := make([]string, 0, 75)
	for i := 0; i < 75; i++ {
		identifiers = append(identifiers, fmt.Sprintf("%d", i))
	}

	status, body := getPlaces(t, service, "/v1/places?placeIds="+strings.Join(identifiers, ","))

	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Data, 50)
	require.Equal(t, batch.MessageSomeBatchesFailed, body.Message)
	require.Len(t, body.Errors, 1)
	require.Equal(t, 50, body.Errors[0].BatchIndex)
	require.Equal(t, http.StatusBadGateway, body.Errors[0].Status)
}

func TestUnitTestPlaceBatchHandlerIsIdempotent(t *testing.T) {
	upstreamServer := echoUpstream(t)
	defer upstreamServer.Close()

	service := newTestService(t, upstreamServer.URL, 2)

	firstStatus, firstBody := getPlaces(t, service, "/v1/places?placeIds=1,2,3,4,5")
	secondStatus, secondBody := getPlaces(t, service, "/v1/places?placeIds=1,2,3,4,5")

	require.Equal(t, firstStatus, secondStatus)
	require.Equal(t, firstBody, secondBody)
}

func TestUnitTestHealthcheckHandlerReturns200(t *testing.T) {
	service := newTestService(t, "http://localhost:0", 50)

	handler := createHealthcheckHandler(service)

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "proxy service is healthy", recorder.Body.String())
}

func TestUnitTestServicecheckHandlerReturns200(t *testing.T) {
	service := newTestService(t, "http://localhost:0", 50)

	handler := createServicecheckHandler(service)

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/servicecheck", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "proxy service is in service", recorder.Body.String())
}
