package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carolinaIbarra2/gestionBiblioteca/util/dates"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in      string
		y, m, d int
	}{
		{"24-08-1899", 1899, 8, 24},
		{"01-01-2024", 2024, 1, 1},
		{"29-02-2024", 2024, 2, 29}, // leap day
		{"31-12-1999", 1999, 12, 31},
	}
	for _, tc := range cases {
		got, err := dates.Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.y, got.Year(), tc.in)
		require.Equal(t, time.Month(tc.m), got.Month(), tc.in)
		require.Equal(t, tc.d, got.Day(), tc.in)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, in := range []string{"24-08-1899", "29-02-2024", "05-07-2010"} {
		got, err := dates.Parse(in)
		require.NoError(t, err)
		require.Equal(t, in, dates.Format(got))
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"31-02-2024", // day out of range
		"29-02-2023", // not a leap year
		"2024-08-24", // wrong ordering
		"24/08/1899", // wrong separator
		"1-02-2024",  // unpadded day
		"24-8-2024",  // unpadded month
		"24-13-2024", // month out of range
		"24-08-99",   // two digit year
		"not a date",
	}
	for _, in := range cases {
		_, err := dates.Parse(in)
		require.Error(t, err, in)
	}
}
