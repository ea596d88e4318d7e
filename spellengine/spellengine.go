// Package spellengine implements symmetric-delete spell correction
// (SymSpell): a precomputed deletion index gives O(1) average-case
// candidate retrieval, and a Viterbi-style compound pass proposes splits
// and merges across lexeme boundaries (§4.2).
//
// An Engine is built once from a [data.DataStore] and is safe for
// concurrent use thereafter: Lookup and LookupCompound never mutate it.
package spellengine

import (
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/bahasakita/teks/data"
	"github.com/bahasakita/teks/internal/engerr"
)

// DistanceAlgorithm selects the string-distance metric used to rank
// candidates. Damerau is the only algorithm currently implemented.
type DistanceAlgorithm int

const (
	Damerau DistanceAlgorithm = iota
)

// Verbosity controls how many suggestions Lookup returns (§4.2.2).
type Verbosity int

const (
	// Top keeps at most one suggestion: smallest distance, ties broken by
	// highest frequency.
	Top Verbosity = iota
	// Closest keeps every suggestion tied at the smallest observed distance.
	Closest
	// All keeps every suggestion within the edit bound.
	All
)

// Suggestion is one correction candidate.
type Suggestion struct {
	Term     string
	Distance int
	Count    int64
}

// Config holds Engine build-time parameters (§4.2.1).
type Config struct {
	// MaxDictionaryEditDistance bounds the distance the deletion index is
	// built for. Defaults to 2 when zero.
	MaxDictionaryEditDistance int
	// PrefixLength is the indexed prefix length. Defaults to 7 when zero.
	PrefixLength int
	// CountThreshold is the minimum corpus frequency admitted into the
	// index.
	CountThreshold int64
	// CorpusWordCount is the denominator used for Naive-Bayes bigram
	// frequency estimates in the compound pass.
	CorpusWordCount int64
	DistanceAlgorithm DistanceAlgorithm
}

func (c Config) withDefaults() Config {
	if c.MaxDictionaryEditDistance == 0 {
		c.MaxDictionaryEditDistance = 2
	}
	if c.PrefixLength == 0 {
		c.PrefixLength = 7
	}
	if c.CorpusWordCount == 0 {
		c.CorpusWordCount = 1_024_908_267_229
	}
	return c
}

// Engine is an immutable, built SymSpell index plus the bigram and
// compound-lookup data needed by LookupCompound.
type Engine struct {
	cfg Config

	wordFreq  map[string]int64
	bigrams   map[string]int64
	bigramMin int64
	maxLength int

	// wordList is the idword half of the word<->id bijection (§3.5):
	// wordList[id] recovers the word a deletes entry points at. The
	// wordid half is never materialized as a separate map — wordFreq's
	// key set already answers "does this word exist," and assignment
	// only ever runs forward (word appended, id = len(wordList)), so a
	// reverse id lookup has no caller.
	wordList []string

	// deletes maps hash(deletion) to the ids (indices into wordList) of
	// the dictionary words whose prefix deletion produced it, keeping
	// the index compact instead of duplicating word strings per entry.
	deletes map[uint64][]int32
}

// New builds an Engine from store, indexing every word whose frequency
// meets cfg.CountThreshold (§4.2.1). A zero Config uses the documented
// defaults (max edit distance 2, prefix length 7).
func New(store *data.DataStore, cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()
	if cfg.MaxDictionaryEditDistance < 0 {
		return nil, engerr.Configuration("max_dictionary_edit_distance must be non-negative")
	}

	e := &Engine{
		cfg:       cfg,
		wordFreq:  make(map[string]int64, len(store.WordFreq)),
		bigrams:   store.Bigrams,
		bigramMin: store.BigramMinCount,
		wordList:  make([]string, 0, len(store.WordFreq)),
		deletes:   make(map[uint64][]int32, len(store.WordFreq)*4),
	}

	for word, count := range store.WordFreq {
		if count < cfg.CountThreshold {
			continue
		}
		e.wordFreq[word] = count
		if n := runeLen(word); n > e.maxLength {
			e.maxLength = n
		}

		id := int32(len(e.wordList)) //nolint:gosec // dictionary size is bounded well below int32 max
		e.wordList = append(e.wordList, word)

		for del := range e.editsPrefix(word) {
			h := stringHash(del)
			e.deletes[h] = append(e.deletes[h], id)
		}
	}

	return e, nil
}

func stringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// truncateRunes returns s truncated to at most n runes.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// editsPrefix returns every string obtainable by deleting up to
// cfg.MaxDictionaryEditDistance characters from the first cfg.PrefixLength
// characters of key (§4.2.1).
func (e *Engine) editsPrefix(key string) map[string]struct{} {
	out := make(map[string]struct{})
	keyLen := runeLen(key)

	if keyLen <= e.cfg.MaxDictionaryEditDistance {
		out[""] = struct{}{}
	}

	var seed string
	if keyLen > e.cfg.PrefixLength {
		seed = truncateRunes(key, e.cfg.PrefixLength)
	} else {
		seed = key
	}
	out[seed] = struct{}{}
	e.edits(seed, 0, out)
	return out
}

func (e *Engine) edits(word string, distance int, out map[string]struct{}) {
	distance++
	runes := []rune(word)
	if len(runes) <= 1 {
		return
	}
	for i := range runes {
		del := string(runes[:i]) + string(runes[i+1:])
		if _, ok := out[del]; ok {
			continue
		}
		out[del] = struct{}{}
		if distance < e.cfg.MaxDictionaryEditDistance {
			e.edits(del, distance, out)
		}
	}
}

// Lookup returns correction candidates for input within maxEditDistance,
// shaped by verbosity (§4.2.2). maxEditDistance must not exceed
// cfg.MaxDictionaryEditDistance.
func (e *Engine) Lookup(input string, verbosity Verbosity, maxEditDistance int) []Suggestion {
	if maxEditDistance > e.cfg.MaxDictionaryEditDistance {
		maxEditDistance = e.cfg.MaxDictionaryEditDistance
	}

	inputLen := runeLen(input)
	if inputLen-e.cfg.MaxDictionaryEditDistance > e.maxLength {
		return nil
	}

	var suggestions []Suggestion
	seen := make(map[string]struct{})

	if count, ok := e.wordFreq[input]; ok {
		suggestions = append(suggestions, Suggestion{Term: input, Distance: 0, Count: count})
		if verbosity != All {
			return suggestions
		}
	}
	seen[input] = struct{}{}

	maxEditDistance2 := maxEditDistance
	tried := make(map[string]struct{})
	candidates := make([]string, 0, 4)

	inputPrefixLen := inputLen
	if inputPrefixLen > e.cfg.PrefixLength {
		inputPrefixLen = e.cfg.PrefixLength
		candidates = append(candidates, truncateRunes(input, inputPrefixLen))
	} else {
		candidates = append(candidates, input)
	}

	for ci := 0; ci < len(candidates); ci++ {
		candidate := candidates[ci]
		candidateLen := runeLen(candidate)
		lengthDiff := inputPrefixLen - candidateLen

		if lengthDiff > maxEditDistance2 {
			if verbosity == All {
				continue
			}
			break
		}

		if dictWordIDs, ok := e.deletes[stringHash(candidate)]; ok {
			for _, id := range dictWordIDs {
				word := e.wordList[id]
				wordLen := runeLen(word)
				if word == input {
					continue
				}
				if absInt(wordLen-inputLen) > maxEditDistance2 ||
					wordLen < candidateLen ||
					(wordLen == candidateLen && word != candidate) {
					continue
				}

				suggPrefixLen := minInt(wordLen, e.cfg.PrefixLength)
				if suggPrefixLen > inputPrefixLen && suggPrefixLen-candidateLen > maxEditDistance2 {
					continue
				}

				var distance int
				switch {
				case candidateLen == 0:
					distance = maxInt(inputLen, wordLen)
					if distance > maxEditDistance2 {
						continue
					}
					if _, dup := seen[word]; dup {
						continue
					}
					seen[word] = struct{}{}

				case wordLen == 1:
					if !containsRune(input, []rune(word)[0]) {
						distance = inputLen
					} else {
						distance = inputLen - 1
					}
					if distance > maxEditDistance2 {
						continue
					}
					if _, dup := seen[word]; dup {
						continue
					}
					seen[word] = struct{}{}

				default:
					if e.hasDifferentSuffix(maxEditDistance, input, inputLen, candidateLen, word, wordLen) {
						continue
					}
					if verbosity != All && !deleteInSuggestionPrefix(e.cfg.PrefixLength, candidate, candidateLen, word, wordLen) {
						continue
					}
					if _, dup := seen[word]; dup {
						continue
					}
					seen[word] = struct{}{}

					distance = damerauLevenshtein(input, word, maxEditDistance2)
					if distance < 0 {
						continue
					}
				}

				if distance <= maxEditDistance2 {
					count := e.wordFreq[word]
					si := Suggestion{Term: word, Distance: distance, Count: count}

					if len(suggestions) > 0 {
						switch verbosity {
						case Closest:
							if distance < maxEditDistance2 {
								suggestions = suggestions[:0]
							}
						case Top:
							if distance < maxEditDistance2 || count > suggestions[0].Count {
								maxEditDistance2 = distance
								suggestions[0] = si
							}
							continue
						}
					}

					if verbosity != All {
						maxEditDistance2 = distance
					}
					suggestions = append(suggestions, si)
				}
			}
		}

		if lengthDiff < maxEditDistance && candidateLen <= e.cfg.PrefixLength {
			if verbosity != All && lengthDiff >= maxEditDistance2 {
				continue
			}
			runes := []rune(candidate)
			for i := range runes {
				del := string(runes[:i]) + string(runes[i+1:])
				if _, ok := tried[del]; !ok {
					tried[del] = struct{}{}
					candidates = append(candidates, del)
				}
			}
		}
	}

	if len(suggestions) > 1 {
		sort.SliceStable(suggestions, func(i, j int) bool {
			if suggestions[i].Distance != suggestions[j].Distance {
				return suggestions[i].Distance < suggestions[j].Distance
			}
			return suggestions[i].Count > suggestions[j].Count
		})
	}

	return suggestions
}

func deleteInSuggestionPrefix(prefixLength int, delete string, deleteLen int, suggestion string, suggestionLen int) bool {
	if deleteLen == 0 {
		return true
	}
	if prefixLength < suggestionLen {
		suggestionLen = prefixLength
	}
	delRunes := []rune(delete)
	sugRunes := []rune(suggestion)
	j := 0
	for i := 0; i < deleteLen; i++ {
		delChar := delRunes[i]
		for j < suggestionLen && delChar != sugRunes[j] {
			j++
		}
		if j == suggestionLen {
			return false
		}
	}
	return true
}

func (e *Engine) hasDifferentSuffix(maxEditDistance int, input string, inputLen, candidateLen int, suggestion string, suggestionLen int) bool {
	min := 0
	if e.cfg.PrefixLength-maxEditDistance == candidateLen {
		min = minInt(inputLen, suggestionLen) - e.cfg.PrefixLength
	}

	if e.cfg.PrefixLength-maxEditDistance != candidateLen {
		return false
	}

	ir := []rune(input)
	sr := []rune(suggestion)

	if (min-e.cfg.PrefixLength) > 1 && suffixOf(ir, inputLen+1-min) != suffixOf(sr, suggestionLen+1-min) {
		return true
	}
	if min > 0 {
		a1 := atRune(ir, inputLen-min)
		b1 := atRune(sr, suggestionLen-min)
		if a1 != b1 {
			a2 := atRune(ir, inputLen-min-1)
			b2 := atRune(sr, suggestionLen-min)
			a3 := atRune(ir, inputLen-min)
			b3 := atRune(sr, suggestionLen-min-1)
			if a2 != b2 || a3 != b3 {
				return true
			}
		}
	}
	return false
}

func suffixOf(r []rune, fromLen int) string {
	if fromLen <= 0 {
		return string(r)
	}
	if fromLen > len(r) {
		return ""
	}
	return string(r[len(r)-fromLen:])
}

func atRune(r []rune, idx int) rune {
	if idx < 0 || idx >= len(r) {
		return -1
	}
	return r[idx]
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// damerauLevenshtein computes the restricted (adjacent-transposition-only)
// edit distance between a and b, capped at maxDistance: returns -1 if the
// true distance exceeds it.
func damerauLevenshtein(a, b string, maxDistance int) int {
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)

	if la == 0 {
		if lb > maxDistance {
			return -1
		}
		return lb
	}
	if lb == 0 {
		if la > maxDistance {
			return -1
		}
		return la
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			best := minInt(del, minInt(ins, sub))

			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				trans := prev2[j-2] + cost
				best = minInt(best, trans)
			}

			curr[j] = best
		}
		prev2, prev, curr = prev, curr, prev2
	}

	if prev[lb] > maxDistance {
		return -1
	}
	return prev[lb]
}

func saturatingInt64(v float64) int64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
