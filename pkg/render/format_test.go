// pkg/render/format_test.go

package render

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

// Variables, so the sum is computed in float64 rather than as a constant.
var tenth, fifth = 0.1, 0.2

func TestFormatFixed2(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.00"},
		{in: math.Copysign(0, -1), want: "0.00"},
		{in: 100, want: "100.00"},
		{in: 100*1.1*0.9 + 10, want: "109.00"},
		{in: 1.005, want: "1.00"}, // stored below the tie
		{in: 0.125, want: "0.13"}, // exact tie rounds away from zero
		{in: 2.675, want: "2.67"},
		{in: 1234567.891, want: "1234567.89"},
		{in: tenth + fifth, want: "0.30"},
		{in: -1.5, want: "-1.50"},
		{in: 1e-9, want: "0.00"},
		{in: math.NaN(), want: "NaN"},
		{in: math.Inf(-1), want: "-Infinity"},
	}
	for _, tc := range testCases {
		if got := formatFixed2(tc.in); got != tc.want {
			t.Errorf("formatFixed2(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: 1, want: "1"},
		{in: 2.5, want: "2.5"},
		{in: 7.25, want: "7.25"},
		{in: tenth + fifth, want: "0.30000000000000004"},
		{in: 1e21, want: "1e+21"},
		{in: 1.5e-7, want: "1.5e-7"},
		{in: -3, want: "-3"},
		{in: math.Inf(1), want: "Infinity"},
	}
	for _, tc := range testCases {
		if got := formatNumber(tc.in); got != tc.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDateLayout(t *testing.T) {
	testCases := []struct {
		tag  language.Tag
		want string
	}{
		{tag: language.Und, want: "1/2/2006"},
		{tag: language.AmericanEnglish, want: "1/2/2006"},
		{tag: language.BritishEnglish, want: "02/01/2006"},
		{tag: language.MustParse("en-CA"), want: "2006-01-02"},
		{tag: language.MustParse("de-DE"), want: "2.1.2006"},
		{tag: language.MustParse("fr-FR"), want: "02/01/2006"},
		{tag: language.MustParse("zh-CN"), want: "2006/1/2"},
		{tag: language.Japanese, want: "2006/1/2"},
	}
	for _, tc := range testCases {
		if got := dateLayout(tc.tag); got != tc.want {
			t.Errorf("dateLayout(%s) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "\n \n\t\n", want: nil},
		{in: "a", want: []string{"a"}},
		{in: "\na\r\n\n  b  \n", want: []string{"a", "  b  "}},
	}
	for _, tc := range testCases {
		if d := cmp.Diff(tc.want, splitLines(tc.in)); d != "" {
			t.Errorf("splitLines(%q) mismatch (-want +got):\n%s", tc.in, d)
		}
	}
}
