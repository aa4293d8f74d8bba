// Package accidental handles sharp/flat notation shared by intervals and
// pitch names. ASCII spellings (#, b) and the unicode glyphs are both
// accepted on input; output always uses the glyphs.
package accidental

import "fmt"

var values = map[rune]int{
	'#': 1,
	'♯': 1,
	'b': -1,
	'♭': -1,
	'𝄪': 2,
	'𝄫': -2,
}

// Value returns the semitone offset of a single accidental rune.
func Value(r rune) (int, bool) {
	v, ok := values[r]
	return v, ok
}

// Sum adds up a run of accidental characters, e.g. "♯𝄪" -> 3.
func Sum(s string) (int, error) {
	var total int
	for _, r := range s {
		v, ok := values[r]
		if !ok {
			return 0, fmt.Errorf("unknown accidental %q", r)
		}
		total += v
	}
	return total, nil
}

// String renders a signed semitone offset as accidental glyphs,
// preferring double sharps/flats: +3 -> "𝄪♯", -2 -> "𝄫".
func String(n int) string {
	var s string
	for n >= 2 {
		s += "𝄪"
		n -= 2
	}
	if n == 1 {
		s += "♯"
	}
	for n <= -2 {
		s += "𝄫"
		n += 2
	}
	if n == -1 {
		s += "♭"
	}
	return s
}
