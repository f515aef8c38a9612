package salary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

func i64(v int64) *int64 { return &v }

func period(p models.SalaryPeriod) *models.SalaryPeriod { return &p }

func TestParseLakhRange(t *testing.T) {
	rng, ok := Parse("INR 12L – 18L / year")
	require.True(t, ok)
	require.Equal(t, Range{
		Currency: "INR",
		Min:      1200000,
		Max:      1800000,
		Period:   models.PeriodYearly,
	}, rng)
}

func TestParseSeparatorsAndSuffixes(t *testing.T) {
	cases := []struct {
		in       string
		min, max int64
		period   models.SalaryPeriod
	}{
		{"INR 30k – 40k / month", 30000, 40000, models.PeriodMonthly},
		{"INR 30k - 40k / month", 30000, 40000, models.PeriodMonthly},
		{"usd 80000 - 120000 / year", 80000, 120000, models.PeriodYearly},
		{"INR 4.5L – 7L / year", 450000, 700000, models.PeriodYearly},
		{"  INR 12L – 18L / year  ", 1200000, 1800000, models.PeriodYearly},
	}
	for _, tc := range cases {
		rng, ok := Parse(tc.in)
		require.True(t, ok, "expected %q to parse", tc.in)
		require.Equal(t, tc.min, rng.Min, tc.in)
		require.Equal(t, tc.max, rng.Max, tc.in)
		require.Equal(t, tc.period, rng.Period, tc.in)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"competitive",
		"12L – 18L / year",          // missing currency
		"INR 12L – 18L",             // missing period
		"INR 12L – 18L / fortnight", // unknown period
		"INR 12L / year",            // single bound
	} {
		_, ok := Parse(in)
		require.False(t, ok, "expected %q to be rejected", in)
	}
}

func TestFormatBothBounds(t *testing.T) {
	got := Format(i64(1200000), i64(1800000), "INR", period(models.PeriodYearly))
	require.Contains(t, got, "1,200,000")
	require.Contains(t, got, "1,800,000")
	require.Contains(t, got, "–")
	require.True(t, strings.HasSuffix(got, "/ yearly"), got)
}

func TestFormatSingleBound(t *testing.T) {
	got := Format(i64(800000), nil, "INR", period(models.PeriodYearly))
	require.True(t, strings.HasPrefix(got, "From "), got)
	require.Contains(t, got, "800,000")

	got = Format(nil, i64(1400000), "INR", nil)
	require.True(t, strings.HasPrefix(got, "Up to "), got)
	require.NotContains(t, got, "/")
}

func TestFormatNoBounds(t *testing.T) {
	require.Equal(t, NotSpecified, Format(nil, nil, "INR", period(models.PeriodYearly)))
}

func TestFormatUnknownCurrency(t *testing.T) {
	got := Format(i64(1000), i64(2000), "XQZ", period(models.PeriodMonthly))
	require.Contains(t, got, "XQZ 1000")
	require.Contains(t, got, "XQZ 2000")
}

func TestParseFormatRoundTrip(t *testing.T) {
	rng, ok := Parse("INR 12L – 18L / year")
	require.True(t, ok)
	got := Format(&rng.Min, &rng.Max, rng.Currency, &rng.Period)
	require.Contains(t, got, "1,200,000")
	require.Contains(t, got, "1,800,000")
	require.True(t, strings.HasSuffix(got, "/ yearly"), got)
}
