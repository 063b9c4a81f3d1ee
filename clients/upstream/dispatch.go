package upstream

import (
	"context"
	"fmt"
	"sync"

	"github.com/place-labs/place-proxy-service/batch"
)

// FetchBatches issues one upstream request per batch concurrently,
// returning one result per batch in partition order. Each goroutine
// writes to its own pre-allocated slot so completion order never affects
// output order, and a failed batch never aborts the others.
func (c *Client) FetchBatches(ctx context.Context, batches [][]string) []batch.Result {
	results := make([]batch.Result, len(batches))

	wg := sync.WaitGroup{}

	offset := 0

	for i, identifiers := range batches {
		wg.Add(1)

		go func(slot int, batchIndex int, identifiers []string) {
			defer wg.Done()

			c.logger.Debug().Msg(fmt.Sprintf("fetching batch of %d place ids starting at offset %d", len(identifiers), batchIndex))

			results[slot] = c.FetchBatch(ctx, batchIndex, identifiers)
		}(i, offset, identifiers)

		offset += len(identifiers)
	}

	wg.Wait()

	return results
}
