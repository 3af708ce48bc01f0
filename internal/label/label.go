// Package label turns target indices into short keyboard labels.
//
// Two entry points exist. For maps a single index to a label using the
// legacy per-index scheme and is kept for callers that need stable,
// index-addressable output. Generate produces the label set for a whole hint
// session; unlike For it is prefix-free for every size, which is what
// incremental matching needs.
package label

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultChars favours the left-hand home row, then the rows above and below.
const DefaultChars = "asdfgqwertzxcvb"

var (
	ErrAlphabetTooShort = errors.New("alphabet needs at least two characters")
	ErrDuplicateChar    = errors.New("alphabet contains a duplicate character")
	ErrInvalidChar      = errors.New("alphabet characters must be letters a-z")
)

// Alphabet is an ordered set of distinct label characters. Earlier characters
// are handed out first.
type Alphabet []rune

// Default returns the built-in alphabet.
func Default() Alphabet {
	return Alphabet(DefaultChars)
}

// ParseAlphabet validates a configured alphabet. Upper-case letters are folded
// to lower case because key input is folded the same way.
func ParseAlphabet(s string) (Alphabet, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	runes := []rune(s)
	if len(runes) < 2 {
		return nil, fmt.Errorf("%w (got %q)", ErrAlphabetTooShort, s)
	}
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		if r < 'a' || r > 'z' || runewidth.RuneWidth(r) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidChar, r)
		}
		if _, ok := seen[r]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateChar, r)
		}
		seen[r] = struct{}{}
	}
	return Alphabet(runes), nil
}

// Contains reports whether r is one of the alphabet characters.
func (a Alphabet) Contains(r rune) bool {
	for _, c := range a {
		if c == r {
			return true
		}
	}
	return false
}

func (a Alphabet) String() string {
	return string(a)
}

// For returns the label for index. Indices below n get one character, the
// next n*n get two, and beyond that three characters are composed in the
// order first, third, second. Indices too large for three characters fall
// back to a plain base-n encoding so the function stays total.
func For(index int, alphabet Alphabet) string {
	n := len(alphabet)
	if n == 0 || index < 0 {
		return ""
	}
	if index < n {
		return string(alphabet[index])
	}
	rest := index - n
	first := rest / n
	second := rest % n
	if first < n {
		return string([]rune{alphabet[first], alphabet[second]})
	}
	third := first % n
	first = first / n
	if first < n {
		return string([]rune{alphabet[first], alphabet[third], alphabet[second]})
	}
	return baseN(rest, alphabet)
}

func baseN(value int, alphabet Alphabet) string {
	n := len(alphabet)
	digits := make([]rune, 0, 4)
	for {
		digits = append(digits, alphabet[value%n])
		value /= n
		if value == 0 {
			break
		}
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Generate returns k prefix-free labels in assignment order. Up to n targets
// get the single characters in alphabet order, matching For. Past that, the
// lowest-priority labels of the current length are turned into prefixes for
// one more character, only as many as needed, so the highest-priority
// characters remain one keystroke for the first targets.
func Generate(k int, alphabet Alphabet) []string {
	n := len(alphabet)
	if k <= 0 || n == 0 {
		return nil
	}
	if n == 1 {
		// a single character can label exactly one target without prefixes
		return []string{string(alphabet[0])}
	}
	frontier := make([]string, n)
	for i, r := range alphabet {
		frontier[i] = string(r)
	}
	for len(frontier) < k {
		need := k - len(frontier)
		expand := (need + n - 2) / (n - 1)
		if expand > len(frontier) {
			expand = len(frontier)
		}
		keep := len(frontier) - expand
		next := make([]string, 0, keep+expand*n)
		next = append(next, frontier[:keep]...)
		for _, prefix := range frontier[keep:] {
			for _, r := range alphabet {
				next = append(next, prefix+string(r))
			}
		}
		frontier = next
	}
	return frontier[:k]
}

// PrefixFree reports whether no label in labels is a proper prefix of another.
func PrefixFree(labels []string) bool {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	for _, l := range labels {
		for i := 1; i < len(l); i++ {
			if _, ok := seen[l[:i]]; ok {
				return false
			}
		}
	}
	return true
}
