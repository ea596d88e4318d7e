// Package stemmer implements a tree-indexed Indonesian morphological
// stemmer (§4.3): prefix and suffix tables are enumerated by increasing
// length rather than applying hand-written derivation rules, and every
// admissible (prefix, suffix) pairing is checked against a root
// dictionary. The longest surviving candidate root wins.
//
// This is a direct generalization of the POSTEMI design (tree-based
// stemming with under 100 lines of rule logic) onto the pluggable
// [data.DataStore] tables instead of a single baked-in Indonesian
// dictionary, so callers can swap in their own tables.
package stemmer

import (
	"regexp"

	"github.com/bahasakita/teks/data"
)

// pluralPattern matches reduplicated words of the form "(X)-X" (e.g.
// "buku-buku"), collapsed to a single X before stemming (§4.3 step 1).
var pluralPattern = regexp.MustCompile(`^(\w+)-(\w+)$`)

// Stemmer is an immutable handle over a DataStore's prefix, suffix, and
// root tables. Safe for concurrent use.
type Stemmer struct {
	store *data.DataStore
}

// New returns a Stemmer backed by store's PrefixTable, SuffixTable, and
// RootWords.
func New(store *data.DataStore) *Stemmer {
	return &Stemmer{store: store}
}

type candidate struct {
	root string
	len  int
}

// StemWord returns the longest root word word can decompose to, or ("",
// false) if no prefix/suffix peeling yields a known root (§4.3).
func (s *Stemmer) StemWord(word string) (string, bool) {
	if m := pluralPattern.FindStringSubmatch(word); m != nil && m[1] == m[2] {
		word = m[1]
	}

	suffixOffsets := s.suffixOffsets(word)
	prefixOffsets := s.prefixOffsets(word)

	wordRunes := []rune(word)
	wordLen := len(wordRunes)

	var candidates []candidate
	for _, po := range prefixOffsets {
		for _, so := range suffixOffsets {
			if po.length+so > wordLen {
				continue
			}
			middle := string(wordRunes[po.length : wordLen-so])

			if s.store.RootWords.Contains(middle) {
				candidates = append(candidates, candidate{root: middle, len: runeLen(middle)})
			}
			for _, sub := range po.substitutions {
				m := sub + middle
				if s.store.RootWords.Contains(m) {
					candidates = append(candidates, candidate{root: m, len: runeLen(m)})
				}
			}
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.len > best.len {
			best = c
		}
	}
	return best.root, true
}

// Stem returns the stem of word, or word unchanged if no decomposition is
// found.
func (s *Stemmer) Stem(word string) string {
	if root, ok := s.StemWord(word); ok {
		return root
	}
	return word
}

type prefixOffset struct {
	length        int
	substitutions []string
}

// prefixOffsets enumerates admissible prefix lengths (§4.3 step 3),
// always including length 0.
func (s *Stemmer) prefixOffsets(word string) []prefixOffset {
	runes := []rune(word)
	offsets := []prefixOffset{{length: 0}}

	for p := 1; p < len(runes); p++ {
		prefix := string(runes[:p])
		rule, ok := s.store.PrefixTable[prefix]
		if !ok {
			break
		}
		if rule == nil {
			// Pass-through: keep enumerating without recording a split point.
			continue
		}
		offsets = append(offsets, prefixOffset{length: p, substitutions: rule.Substitutions})
	}
	return offsets
}

// suffixOffsets enumerates admissible suffix lengths (§4.3 step 2),
// always including length 0.
func (s *Stemmer) suffixOffsets(word string) []int {
	runes := []rune(word)
	offsets := []int{0}

	for sl := 1; sl < len(runes); sl++ {
		suffix := string(runes[len(runes)-sl:])
		admissible, ok := s.store.SuffixTable[suffix]
		if !ok {
			break
		}
		if !admissible {
			continue
		}
		offsets = append(offsets, sl)
	}
	return offsets
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
