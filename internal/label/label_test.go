package label

import (
	"errors"
	"strings"
	"testing"
)

func TestForSingleCharactersInAlphabetOrder(t *testing.T) {
	alphabet := Default()
	for i, r := range alphabet {
		if got := For(i, alphabet); got != string(r) {
			t.Fatalf("expected index %d to map to %q, got %q", i, string(r), got)
		}
	}
}

func TestForTwoCharacterBoundaries(t *testing.T) {
	alphabet := Default()
	if got := For(15, alphabet); got != "aa" {
		t.Fatalf("expected index 15 to be aa, got %q", got)
	}
	if got := For(29, alphabet); got != "ab" {
		t.Fatalf("expected index 29 to be ab, got %q", got)
	}
	if got := For(30, alphabet); got != "sa" {
		t.Fatalf("expected index 30 to be sa, got %q", got)
	}
	if got := For(15+15*15-1, alphabet); got != "bb" {
		t.Fatalf("expected last two-character index to be bb, got %q", got)
	}
}

func TestForThreeCharacterOrdering(t *testing.T) {
	alphabet := Alphabet("abc")
	// rest = 12 - 3 = 9; first = 3, second = 0; third = 0, first = 1
	if got := For(12, alphabet); got != "baa" {
		t.Fatalf("expected baa, got %q", got)
	}
	// rest = 13 - 3 = 10; first = 3, second = 1; third = 0, first = 1
	if got := For(13, alphabet); got != "bab" {
		t.Fatalf("expected bab, got %q", got)
	}
	// rest = 15 - 3 = 12; first = 4, second = 0; third = 1, first = 1
	if got := For(15, alphabet); got != "bba" {
		t.Fatalf("expected bba, got %q", got)
	}
}

func TestForIsTotal(t *testing.T) {
	alphabet := Alphabet("ab")
	for i := 0; i < 500; i++ {
		got := For(i, alphabet)
		if got == "" {
			t.Fatalf("expected label for index %d", i)
		}
		for _, r := range got {
			if !alphabet.Contains(r) {
				t.Fatalf("label %q for index %d uses %q outside alphabet", got, i, r)
			}
		}
	}
	if For(-1, alphabet) != "" {
		t.Fatalf("expected empty label for negative index")
	}
}

func TestForIsDeterministic(t *testing.T) {
	alphabet := Default()
	for i := 0; i < 300; i++ {
		if For(i, alphabet) != For(i, alphabet) {
			t.Fatalf("expected stable output for index %d", i)
		}
	}
}

func TestGenerateMatchesForWithinAlphabet(t *testing.T) {
	alphabet := Default()
	labels := Generate(len(alphabet), alphabet)
	for i, l := range labels {
		if want := For(i, alphabet); l != want {
			t.Fatalf("expected label %d to be %q, got %q", i, want, l)
		}
	}
}

func TestGeneratePrefixFreeUpToThousand(t *testing.T) {
	alphabet := Default()
	for k := 1; k <= 1000; k++ {
		labels := Generate(k, alphabet)
		if len(labels) != k {
			t.Fatalf("expected %d labels, got %d", k, len(labels))
		}
		if !PrefixFree(labels) {
			t.Fatalf("expected prefix-free labels for k=%d: %v", k, labels)
		}
		seen := make(map[string]struct{}, k)
		for _, l := range labels {
			if l == "" {
				t.Fatalf("expected non-empty label for k=%d", k)
			}
			if _, dup := seen[l]; dup {
				t.Fatalf("duplicate label %q for k=%d", l, k)
			}
			seen[l] = struct{}{}
		}
	}
}

func TestGenerateKeepsShortLabelsFirst(t *testing.T) {
	alphabet := Default()
	labels := Generate(16, alphabet)
	want := append(strings.Split("a s d f g q w e r t z x c v", " "), "ba", "bs")
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, labels)
		}
	}
}

func TestGenerateSmallAlphabet(t *testing.T) {
	alphabet := Alphabet("asd")
	got := Generate(4, alphabet)
	want := []string{"a", "s", "da", "ds"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if Generate(0, alphabet) != nil {
		t.Fatalf("expected nil for zero targets")
	}
}

func TestParseAlphabet(t *testing.T) {
	a, err := ParseAlphabet(" ASdf ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.String() != "asdf" {
		t.Fatalf("expected folded alphabet asdf, got %q", a.String())
	}
	if _, err := ParseAlphabet("a"); !errors.Is(err, ErrAlphabetTooShort) {
		t.Fatalf("expected ErrAlphabetTooShort, got %v", err)
	}
	if _, err := ParseAlphabet("asa"); !errors.Is(err, ErrDuplicateChar) {
		t.Fatalf("expected ErrDuplicateChar, got %v", err)
	}
	if _, err := ParseAlphabet("as1"); !errors.Is(err, ErrInvalidChar) {
		t.Fatalf("expected ErrInvalidChar, got %v", err)
	}
}

func TestPrefixFreeDetectsPrefix(t *testing.T) {
	if PrefixFree([]string{"a", "aa"}) {
		t.Fatalf("expected a/aa to be reported as not prefix-free")
	}
	if !PrefixFree([]string{"aa", "as", "s"}) {
		t.Fatalf("expected aa/as/s to be prefix-free")
	}
}
