package batch_test

import (
	"fmt"
	"testing"

	"github.com/place-labs/place-proxy-service/batch"
	"github.com/stretchr/testify/require"
)

func makeIdentifiers(n int) []string {
	identifiers := make([]string, 0, n)
	for i := 0; i < n; i++ {
		identifiers = append(identifiers, fmt.Sprintf("%d", i))
	}
	return identifiers
}

func TestUnitTestPartitionBatchSizesAndCoverage(t *testing.T) {
	testCases := []struct {
		name          string
		count         int
		size          int
		expectedSizes []int
	}{
		{
			name:          "fewer identifiers than batch size",
			count:         3,
			size:          50,
			expectedSizes: []int{3},
		},
		{
			name:          "exact multiple of batch size",
			count:         100,
			size:          50,
			expectedSizes: []int{50, 50},
		},
		{
			name:          "remainder in final batch",
			count:         75,
			size:          50,
			expectedSizes: []int{50, 25},
		},
		{
			name:          "batch size of one",
			count:         3,
			size:          1,
			expectedSizes: []int{1, 1, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			identifiers := makeIdentifiers(tc.count)

			batches := batch.Partition(identifiers, tc.size)

			require.Len(t, batches, len(tc.expectedSizes))

			// batches cover the input exactly once, in the original order
			reassembled := make([]string, 0, tc.count)
			for i, b := range batches {
				require.Len(t, b, tc.expectedSizes[i])
				reassembled = append(reassembled, b...)
			}
			require.Equal(t, identifiers, reassembled)

			require.Equal(t, identifiers[0], batches[0][0])
		})
	}
}

func TestUnitTestPartitionEmptyInputYieldsNoBatches(t *testing.T) {
	require.Nil(t, batch.Partition(nil, 50))
	require.Nil(t, batch.Partition([]string{}, 50))
}

func TestUnitTestPartitionIsDeterministic(t *testing.T) {
	identifiers := makeIdentifiers(120)

	first := batch.Partition(identifiers, 50)
	second := batch.Partition(identifiers, 50)

	require.Equal(t, first, second)
}
