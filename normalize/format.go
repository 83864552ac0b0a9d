// ABOUTME: Display formatters for Rupiah amounts, owner initials and dates
// ABOUTME: Dates render as "D Mon YYYY" in WIB with Indonesian month names
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/harperreed/crmdash/models"
)

// WIB is Western Indonesia Time, the zone dates are displayed in.
var WIB = time.FixedZone("WIB", 7*60*60)

var monthAbbr = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

var (
	billion = decimal.New(1, 9)
	million = decimal.New(1, 6)
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders n in the dashboard's currency notation:
// "Rp 1.5M" for billions, "Rp 250Jt" for millions, grouped digits below.
func FormatRupiah(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}

	d := decimal.NewFromFloat(n)
	switch {
	case d.GreaterThanOrEqual(billion):
		return "Rp " + d.Div(billion).StringFixed(1) + "M"
	case d.GreaterThanOrEqual(million):
		return "Rp " + d.Div(million).StringFixed(0) + "Jt"
	}

	if n == math.Trunc(n) {
		return "Rp " + idPrinter.Sprintf("%d", int64(n))
	}
	return "Rp " + idPrinter.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(3)))
}

// Initials takes the first letter of each word of name, keeps the first two
// and upper-cases them. Returns "" for a blank name.
func Initials(name string) string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
		count++
		if count == 2 {
			break
		}
	}
	return b.String()
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// FormatDate renders a date-like value as "D Mon YYYY". Accepts ISO
// timestamps, date-only strings and epoch milliseconds. Absent or
// unparseable values yield the "-" placeholder.
func FormatDate(v any) string {
	t, ok := parseDate(v)
	if !ok {
		return models.Placeholder
	}
	return strconv.Itoa(t.Day()) + " " + monthAbbr[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

func parseDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case float64:
		if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(x)).In(WIB), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		// Calendar dates carry no zone; keep the day as written
		if t, err := time.ParseInLocation(time.DateOnly, s, WIB); err == nil {
			return t, true
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, WIB); err == nil {
				return t.In(WIB), true
			}
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms != 0 {
			return time.UnixMilli(ms).In(WIB), true
		}
	}
	return time.Time{}, false
}

// leadingFloat parses the longest numeric prefix of s ("12.5abc" gives 12.5).
// Returns 0 when there is none.
func leadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	seenDigit, seenDot, seenExp := false, false, false
scan:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			end = i + 1
		case (c == '+' || c == '-') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			break scan
		}
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
