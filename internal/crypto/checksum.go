package crypto

import (
	"cmp"
	"slices"

	"roomkey/internal/domain"
)

type letterCount struct {
	letter rune
	n      int
}

// Checksum returns up to five letters of tokens ordered by frequency, ties
// broken alphabetically. Fewer than five distinct letters yield a shorter
// result; it is never padded.
func Checksum(tokens []string) domain.Checksum {
	counts := make(map[rune]int)
	for _, tok := range tokens {
		for _, r := range tok {
			if isLetter(r) {
				counts[r]++
			}
		}
	}

	freq := make([]letterCount, 0, len(counts))
	for r, n := range counts {
		freq = append(freq, letterCount{letter: r, n: n})
	}
	slices.SortFunc(freq, func(a, b letterCount) int {
		if c := cmp.Compare(b.n, a.n); c != 0 {
			return c
		}
		return cmp.Compare(a.letter, b.letter)
	})

	n := min(len(freq), domain.ChecksumLen)
	out := make([]rune, n)
	for i := range n {
		out[i] = freq[i].letter
	}
	return domain.Checksum(out)
}

// Valid reports whether rec's stored checksum matches the one derived from
// its name tokens. A record without tokens, or whose stored checksum is not
// ChecksumLen letters long, is never valid.
func Valid(rec domain.Record) bool {
	if len(rec.Tokens) == 0 || len(rec.Checksum) != domain.ChecksumLen {
		return false
	}
	return Checksum(rec.Tokens) == rec.Checksum
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
