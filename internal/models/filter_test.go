package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterCriterion_Labels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c     FilterCriterion
		label string
		key   string
	}{
		{FilterAll, "All", "all"},
		{FilterNewest, "Newest", "newest"},
		{FilterOldest, "Oldest", "oldest"},
		{FilterPopularity, "Popularity", "popularity"},
	}

	for _, tt := range tests {
		require.True(t, tt.c.Valid())
		require.Equal(t, tt.label, tt.c.Label())
		require.Equal(t, tt.label, tt.c.String())
		require.Equal(t, tt.key, tt.c.Key())
	}
}

func TestFilterCriterion_UnknownValue(t *testing.T) {
	t.Parallel()

	for _, c := range []FilterCriterion{-1, 4, 100} {
		require.False(t, c.Valid())
		require.Equal(t, "", c.Label())
	}
}

func TestFilterCriteria_DeclarationOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]FilterCriterion{FilterAll, FilterNewest, FilterOldest, FilterPopularity},
		FilterCriteria(),
	)
}

func TestParseFilterCriterion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    FilterCriterion
		wantErr bool
	}{
		{"", FilterAll, false},
		{"  ", FilterAll, false},
		{"All", FilterAll, false},
		{"newest", FilterNewest, false},
		{"OLDEST", FilterOldest, false},
		{" Popularity ", FilterPopularity, false},
		{"rating", FilterAll, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilterCriterion(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCriterion)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseFilterCriterion_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range FilterCriteria() {
		got, err := ParseFilterCriterion(c.Label())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}
