// SPDX-License-Identifier: MPL-2.0

package render

import "sort"

// minSimilarity is the similarity floor below which an option is not
// worth suggesting.
const minSimilarity = 0.3

// DidYouMean ranks options by their similarity to the given input,
// best first, dropping anything below the similarity floor. Each
// option is compared over its leading runes only, one past the length
// of the input, so a short abbreviation is not penalized against a
// long command name.
func DidYouMean(given string, options []string) []string {
	in := []rune(given)

	type ranked struct {
		sim  float64
		name string
	}

	var kept []ranked
	for _, opt := range options {
		runes := []rune(opt)
		if max := len(in) + 1; len(runes) > max {
			runes = runes[:max]
		}

		if sim := similarity(in, runes); sim >= minSimilarity {
			kept = append(kept, ranked{sim: sim, name: opt})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].sim != kept[j].sim {
			return kept[i].sim > kept[j].sim
		}
		return kept[i].name < kept[j].name
	})

	out := make([]string, len(kept))
	for i, r := range kept {
		out[i] = r.name
	}
	return out
}

// similarity is the normalized Damerau-Levenshtein similarity: one
// minus the edit distance over the longer length. Two empty strings
// are identical.
func similarity(a, b []rune) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(damerauLevenshtein(a, b))/float64(longest)
}

// damerauLevenshtein computes the restricted edit distance between two
// rune sequences: insertions, deletions, substitutions and adjacent
// transpositions.
func damerauLevenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	rows := make([][]int, len(a)+1)
	for i := range rows {
		rows[i] = make([]int, len(b)+1)
		rows[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		rows[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			d := rows[i-1][j] + 1
			if ins := rows[i][j-1] + 1; ins < d {
				d = ins
			}
			if sub := rows[i-1][j-1] + cost; sub < d {
				d = sub
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if tr := rows[i-2][j-2] + cost; tr < d {
					d = tr
				}
			}
			rows[i][j] = d
		}
	}
	return rows[len(a)][len(b)]
}
