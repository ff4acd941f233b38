// SPDX-License-Identifier: MPL-2.0

package render

import "testing"

func TestDidYouMean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		given   string
		options []string
		want    []string
	}{
		{
			"close match ranks first",
			"deplyo",
			[]string{"status", "deploy"},
			[]string{"deploy"},
		},
		{
			"nothing close",
			"zzz",
			[]string{"deploy", "status"},
			nil,
		},
		{
			"abbreviation not penalized by full length",
			"del",
			[]string{"delete"},
			[]string{"delete"},
		},
		{
			"orders best first",
			"stat",
			[]string{"status", "stats"},
			[]string{"stats", "status"},
		},
		{
			"empty input yields nothing",
			"",
			[]string{"a", "deploy"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DidYouMean(tt.given, tt.options)
			if len(got) != len(tt.want) {
				t.Fatalf("DidYouMean(%q, %v) = %v, want %v", tt.given, tt.options, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("DidYouMean(%q)[%d] = %q, want %q", tt.given, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"abc", "abc", 1},
		{"abc", "acb", 1 - 1.0/3},
		{"abc", "", 0},
		{"kitten", "sitten", 1 - 1.0/6},
	}

	for _, tt := range tests {
		if got := similarity([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Errorf("similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
