package batch

import "encoding/json"

// Record is a single upstream place record, forwarded to the caller
// without inspection
type Record = json.RawMessage

// Failure describes one batch whose upstream call produced no records.
// BatchIndex is the starting offset of the batch within the full
// identifier list, used for error attribution by the caller.
type Failure struct {
	BatchIndex int    `json:"batchIndex"`
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	Details    string `json:"details"`
}

// Result is the tagged outcome of one batch's upstream call: either an
// ordered list of records or a failure, never both.
type Result struct {
	Items   []Record
	Failure *Failure
}

// NewSuccess returns a successful Result wrapping the records returned
// by the upstream call for one batch
func NewSuccess(items []Record) Result {
	return Result{Items: items}
}

// NewFailure returns a failed Result for the batch starting at the
// provided offset
func NewFailure(batchIndex int, status int, statusText string, details string) Result {
	return Result{
		Failure: &Failure{
			BatchIndex: batchIndex,
			Status:     status,
			StatusText: statusText,
			Details:    details,
		},
	}
}

// Failed reports whether the batch's upstream call failed
func (r Result) Failed() bool {
	return r.Failure != nil
}
