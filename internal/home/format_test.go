package home

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₱0"},
		{80, "₱80"},
		{1500, "₱1,500"},
		{17800, "₱17,800"},
		{1234567, "₱1,234,567"},
		{-9500, "-₱9,500"},
		{math.MaxInt64, "₱9,223,372,036,854,775,807"},
		{math.MinInt64, "-₱9,223,372,036,854,775,808"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatAmount("₱", tc.amount))
	}
}

func TestInitial(t *testing.T) {
	require.Equal(t, "C", Initial("coffee"))
	require.Equal(t, "É", Initial("épicerie"))
	require.Equal(t, "?", Initial("  "))
}

func TestMatchProfiles(t *testing.T) {
	profiles := []Profile{
		{ID: "1", Name: "Sarah"},
		{ID: "2", Name: "James"},
		{ID: "3", Name: "Jamie"},
		{ID: "4", Name: "Sara"},
	}

	require.Len(t, MatchProfiles(profiles, ""), 4)

	got := MatchProfiles(profiles, "jam")
	require.Equal(t, []string{"2", "3"}, ids(got))

	// "sarh" is not a substring of either name but sits within edit distance.
	got = MatchProfiles(profiles, "SARH")
	require.Equal(t, []string{"1", "4"}, ids(got))

	got = MatchProfiles(profiles, "sara")
	require.Equal(t, []string{"1", "4"}, ids(got))

	require.Empty(t, MatchProfiles(profiles, "zzzzzz"))
}

func ids(profiles []Profile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID)
	}
	return out
}
