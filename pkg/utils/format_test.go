package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBillions(t *testing.T) {
	assert.Equal(t, "$3200.0B", FormatBillions(3.2e12))
	assert.Equal(t, "$1.5B", FormatBillions(1.5e9))
	assert.Equal(t, "$0.0B", FormatBillions(0))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "29,600", FormatCount(29600))
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "1,000,000", FormatCount(1000000))
}

func TestTimestamp(t *testing.T) {
	ts := Timestamp()
	_, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
}
