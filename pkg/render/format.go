// pkg/render/format.go

package render

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// formatFixed2 prints v with exactly two decimals. The exact binary value of
// v is rounded half away from zero, so 1.005 (stored as 1.00499...) prints
// as 1.00 and 0.125 prints as 0.13.
func formatFixed2(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	_, exp := math.Frexp(v)
	digits := 53 - exp // fractional digits of the exact decimal expansion
	if digits < 3 {
		digits = 3
	}
	exact := new(big.Float).SetFloat64(v).Text('f', digits)
	d, err := decimal.NewFromString(exact)
	if err != nil {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return d.StringFixed(2)
}

// formatNumber prints v the shortest way that reads back as v, switching
// to exponent form for very large and very small magnitudes.
func formatNumber(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

type dateFormat struct {
	tag    language.Tag
	layout string
}

// dateFormats holds the short date layout per locale. The first entry is
// the fallback.
var dateFormats = []dateFormat{
	{tag: language.AmericanEnglish, layout: "1/2/2006"},
	{tag: language.BritishEnglish, layout: "02/01/2006"},
	{tag: language.MustParse("en-AU"), layout: "02/01/2006"},
	{tag: language.MustParse("en-CA"), layout: "2006-01-02"},
	{tag: language.MustParse("en-IN"), layout: "2/1/2006"},
	{tag: language.German, layout: "2.1.2006"},
	{tag: language.French, layout: "02/01/2006"},
	{tag: language.Spanish, layout: "2/1/2006"},
	{tag: language.Chinese, layout: "2006/1/2"},
	{tag: language.Japanese, layout: "2006/1/2"},
}

var dateMatcher = newDateMatcher()

func newDateMatcher() language.Matcher {
	tags := make([]language.Tag, len(dateFormats))
	for i, f := range dateFormats {
		tags[i] = f.tag
	}
	return language.NewMatcher(tags)
}

// dateLayout returns the short date layout that best fits tag.
func dateLayout(tag language.Tag) string {
	_, i, conf := dateMatcher.Match(tag)
	if conf == language.No || i < 0 || i >= len(dateFormats) {
		return dateFormats[0].layout
	}
	return dateFormats[i].layout
}

// splitLines splits text at line breaks and drops blank lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// breakLines splits text at line breaks, keeping blank lines.
func breakLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// formatDate prints t as a short date in loc.
func formatDate(t time.Time, layout string, loc *time.Location) string {
	return t.In(loc).Format(layout)
}
