package crypto

import "strings"

const alphabetLen = 26

// Rotate shifts every letter of tokens forward by shift positions and joins
// the tokens with a single space.
func Rotate(tokens []string, shift int) string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = RotateString(tok, shift)
	}
	return strings.Join(out, " ")
}

// RotateString shifts each letter of s forward by shift positions, keeping
// case. Anything that is not an ASCII letter is copied unchanged.
func RotateString(s string, shift int) string {
	k := rune(normalize(shift))
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z':
			return 'a' + (r-'a'+k)%alphabetLen
		case 'A' <= r && r <= 'Z':
			return 'A' + (r-'A'+k)%alphabetLen
		}
		return r
	}, s)
}

// normalize maps any shift onto [0,26).
func normalize(shift int) int {
	return ((shift % alphabetLen) + alphabetLen) % alphabetLen
}
