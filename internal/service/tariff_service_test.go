package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeValid(t *testing.T) {
	minCBM, maxCBM, err := parseRange("0.5", "3")
	require.NoError(t, err)

	assert.Equal(t, "0.5", minCBM.String())
	assert.Equal(t, "3", maxCBM.String())
}

func TestParseRangeRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		min  string
		max  string
	}{
		{"non-numeric min", "abc", "3"},
		{"non-numeric max", "1", "xyz"},
		{"negative min", "-1", "3"},
		{"max equal to min", "2", "2"},
		{"max below min", "5", "3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseRange(tc.min, tc.max)
			assert.Error(t, err)
		})
	}
}
