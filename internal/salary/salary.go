// Package salary formats salary ranges for display and parses the compact
// textual form used by the sample-data ingestion ("INR 12L – 18L / year").
package salary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

// NotSpecified is rendered when a job carries no salary bounds at all.
const NotSpecified = "Salary not specified"

// Range is the structured form of a parsed salary string.
type Range struct {
	Currency string
	Min      int64
	Max      int64
	Period   models.SalaryPeriod
}

// Format renders a salary range for display. Both bounds present renders
// "min – max / period"; a single bound renders "From min" / "Up to max".
func Format(min, max *int64, currency string, period *models.SalaryPeriod) string {
	if min == nil && max == nil {
		return NotSpecified
	}
	suffix := ""
	if period != nil {
		suffix = " / " + string(*period)
	}
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%s – %s%s", formatAmount(*min, currency), formatAmount(*max, currency), suffix)
	case min != nil:
		return fmt.Sprintf("From %s%s", formatAmount(*min, currency), suffix)
	default:
		return fmt.Sprintf("Up to %s%s", formatAmount(*max, currency), suffix)
	}
}

// formatAmount renders a whole-currency amount with the currency's symbol
// and grouping, without fractional digits. Salaries are whole units, not
// minor units.
func formatAmount(v int64, currency string) string {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		if currency == "" {
			return strconv.FormatInt(v, 10)
		}
		return fmt.Sprintf("%s %d", strings.ToUpper(currency), v)
	}
	f := money.NewFormatter(0, ".", cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(v)
}

// rangeRe accepts "CUR <min> – <max> / month|year" with optional k/l
// magnitude suffixes and either a hyphen or an en-dash separator.
var rangeRe = regexp.MustCompile(`^(?i)([A-Za-z]{3})\s+([\d.]+[kKlL]?)\s*[-\x{2013}]\s*([\d.]+[kKlL]?)\s*/\s*(month|year)$`)

// Parse turns a compact salary range string into structured fields.
// Returns false when the pattern does not match.
func Parse(s string) (Range, bool) {
	m := rangeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Range{}, false
	}
	min, ok := parseMagnitude(m[2])
	if !ok {
		return Range{}, false
	}
	max, ok := parseMagnitude(m[3])
	if !ok {
		return Range{}, false
	}
	period := models.PeriodYearly
	if strings.EqualFold(m[4], "month") {
		period = models.PeriodMonthly
	}
	return Range{
		Currency: strings.ToUpper(m[1]),
		Min:      min,
		Max:      max,
		Period:   period,
	}, true
}

// parseMagnitude scales "12", "12.5k" or "12L": k multiplies by a thousand,
// l by a lakh (100,000).
func parseMagnitude(s string) (int64, bool) {
	mult := float64(1)
	switch {
	case strings.HasSuffix(strings.ToLower(s), "k"):
		mult = 1_000
		s = s[:len(s)-1]
	case strings.HasSuffix(strings.ToLower(s), "l"):
		mult = 100_000
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int64(v*mult + 0.5), true
}
