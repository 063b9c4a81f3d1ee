package batch

import "net/http"

const (
	// MessageSomeBatchesFailed is attached to partial success responses
	MessageSomeBatchesFailed = "Some batches failed."
	// MessageAllRequestsFailed is the error reported when every batch failed
	MessageAllRequestsFailed = "All requests failed"
)

// AggregateResponse wraps the records fetched for every successful batch,
// in batch order, with any per-batch failures attached as metadata
type AggregateResponse struct {
	Data    []Record  `json:"data"`
	Errors  []Failure `json:"errors,omitempty"`
	Message string    `json:"message,omitempty"`
}

// AllFailedResponse wraps the per-batch failures returned when no batch
// produced any records
type AllFailedResponse struct {
	Error  string    `json:"error"`
	Errors []Failure `json:"errors"`
}

// Aggregate merges per-batch results, in partition order, into the final
// response status and body. Partial failure is not fatal: the caller
// receives every record that was fetched with failed batches attached as
// metadata, and only a total failure is reported as one.
func Aggregate(results []Result) (int, interface{}) {
	data := make([]Record, 0)
	failures := make([]Failure, 0)

	for _, result := range results {
		if result.Failed() {
			failures = append(failures, *result.Failure)

			continue
		}

		data = append(data, result.Items...)
	}

	switch {
	case len(failures) == 0:
		return http.StatusOK, AggregateResponse{Data: data}
	case len(data) > 0:
		return http.StatusOK, AggregateResponse{
			Data:    data,
			Errors:  failures,
			Message: MessageSomeBatchesFailed,
		}
	default:
		return http.StatusInternalServerError, AllFailedResponse{
			Error:  MessageAllRequestsFailed,
			Errors: failures,
		}
	}
}
