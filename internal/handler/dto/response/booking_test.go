//go:build unit

package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		cents int64
		want  string
	}{
		{cents: 15000, want: "150.00"},
		{cents: 75000, want: "750.00"},
		{cents: 100, want: "1.00"},
		{cents: 105, want: "1.05"},
		{cents: 5, want: "0.05"},
		{cents: 0, want: "0.00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, formatAmount(tc.cents), "cents=%d", tc.cents)
	}
}
