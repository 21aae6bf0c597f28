package metrics_test

import (
	"testing"

	"github.com/dualai/debate-agent/internal/metrics"
)

func TestCountFeatures(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want metrics.Features
	}{
		{"empty", "", metrics.Features{}},
		{"single word", "viable", metrics.Features{Bytes: 6, Runes: 6, Words: 1, Lines: 1}},
		{"multi line", "first point\nsecond point", metrics.Features{Bytes: 24, Runes: 24, Words: 4, Lines: 2}},
		{"multibyte runes", "I concede — done", metrics.Features{Bytes: 18, Runes: 16, Words: 4, Lines: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := metrics.CountFeatures(tc.in); got != tc.want {
				t.Fatalf("CountFeatures(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}
