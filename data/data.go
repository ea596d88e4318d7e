// Package data holds the immutable-after-load dictionaries shared by the
// spell engine and stemmer (§3.5): word and bigram frequencies, the
// stemmer's root/prefix/suffix tables, stop words, and the tokenizer's
// punctuation set. The word<->id bijection and compact delete index §3.5
// also describes are threshold-filtered derived state, not raw dictionary
// data, so they are built by spellengine.New from WordFreq rather than
// stored here (see spellengine.Engine's wordList/deletes fields).
//
// A DataStore is populated once at startup by the Load* functions and is
// read-only thereafter — safe to share across goroutines without locking,
// matching the concurrency model of §5.
package data

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// PrefixRule is one admissible prefix-table entry: the prefix itself, and
// the substitutions (§4.3) to prepend to the stripped middle when
// consulting the root dictionary (e.g. "men" -> substitution "t" for
// t-restoration: menangkap -> tangkap).
type PrefixRule struct {
	Substitutions []string
}

// DataStore is the set of dictionaries the spell engine and stemmer
// consult. Zero value is an empty store; populate it via the Load*
// functions before handing it to spellengine.New or stemmer.New.
type DataStore struct {
	// WordFreq maps a dictionary word to its corpus frequency.
	WordFreq map[string]int64
	// Bigrams maps "w1 w2" to its corpus frequency.
	Bigrams map[string]int64
	// BigramMinCount is the minimum frequency observed across Bigrams.
	BigramMinCount int64
	// MaxWordLength is the longest word (in runes) seen in WordFreq.
	MaxWordLength int

	// RootWords is the stemmer's root dictionary.
	RootWords mapset.Set[string]
	// PrefixTable maps an admissible prefix string to its rule. A prefix
	// present with a nil value is "pass-through" (§4.3): continue
	// enumerating without recording it as a split point.
	PrefixTable map[string]*PrefixRule
	// SuffixTable maps an admissible suffix string to whether it is a
	// recorded split point (true) or pass-through (false).
	SuffixTable map[string]bool
	// StopWords is the set of stems suppressed from stemmer output.
	StopWords mapset.Set[string]

	// Punctuations is the tokenizer's sentence-terminating character set.
	Punctuations []rune
}

// New returns an empty DataStore ready for the Load* functions.
func New() *DataStore {
	return &DataStore{
		WordFreq:       make(map[string]int64),
		Bigrams:        make(map[string]int64),
		BigramMinCount: math.MaxInt64,
		RootWords:      mapset.NewThreadUnsafeSet[string](),
		PrefixTable:    make(map[string]*PrefixRule),
		SuffixTable:    make(map[string]bool),
		StopWords:      mapset.NewThreadUnsafeSet[string](),
		Punctuations:   []rune{'.', ',', ';', ':', '?', '!', '\n'},
	}
}

// saturatingAdd adds b to a, clamping to math.MaxInt64 on overflow (§7,
// index-overflow saturation).
func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// splitFields splits line on sep, trimming surrounding whitespace from
// each field. sep == "" means "one or more whitespace characters" (the
// space-separated form in §6.1).
func splitFields(line, sep string) []string {
	if sep == "" {
		return strings.Fields(line)
	}
	parts := strings.Split(line, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// LoadUnigramFreq reads "word<sep>count" lines from r into WordFreq,
// skipping malformed or below-threshold lines (§6.1). countThreshold of 0
// admits every parsed entry.
func (d *DataStore) LoadUnigramFreq(r io.Reader, sep string, countThreshold int64) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitFields(line, sep)
		if len(fields) < 2 {
			continue
		}
		word := fields[0]
		count, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || count < countThreshold {
			continue
		}
		if existing, ok := d.WordFreq[word]; ok {
			d.WordFreq[word] = saturatingAdd(existing, count)
		} else {
			d.WordFreq[word] = count
		}
		if n := runeLen(word); n > d.MaxWordLength {
			d.MaxWordLength = n
		}
	}
	return scanner.Err()
}

// LoadBigramFreq reads bigram-frequency lines of the form "w1 w2<sep>count"
// into Bigrams, tracking BigramMinCount (§6.1). When sep == "" the line is
// the three-space-separated-token form "w1 w2 count".
func (d *DataStore) LoadBigramFreq(r io.Reader, sep string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var key, countStr string
		if sep == "" {
			fields := strings.Fields(line)
			if len(fields) != 3 {
				continue
			}
			key = fields[0] + " " + fields[1]
			countStr = fields[2]
		} else {
			fields := splitFields(line, sep)
			if len(fields) < 2 {
				continue
			}
			key = fields[0]
			countStr = fields[1]
		}

		count, err := strconv.ParseInt(countStr, 10, 64)
		if err != nil {
			continue
		}
		d.Bigrams[key] = count
		if count < d.BigramMinCount {
			d.BigramMinCount = count
		}
	}
	return scanner.Err()
}

// LoadRootWords reads one root word per line into RootWords.
func (d *DataStore) LoadRootWords(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			d.RootWords.Add(w)
		}
	}
	return scanner.Err()
}

// LoadStopWords reads one stop word per line into StopWords.
func (d *DataStore) LoadStopWords(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			d.StopWords.Add(w)
		}
	}
	return scanner.Err()
}

// LoadPrefixTable reads prefix-table rows of the form
// "prefix<sep>admissible<sep>sub1,sub2,..." where admissible is "1" for an
// admissible prefix, "0" for pass-through (recorded with a nil rule, §4.3).
// The substitution column may be empty.
func (d *DataStore) LoadPrefixTable(r io.Reader, sep string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitFields(line, sep)
		if len(fields) < 2 {
			continue
		}
		prefix := fields[0]
		if fields[1] == "0" {
			d.PrefixTable[prefix] = nil
			continue
		}
		var subs []string
		if len(fields) >= 3 && fields[2] != "" {
			for _, s := range strings.Split(fields[2], ",") {
				if s = strings.TrimSpace(s); s != "" {
					subs = append(subs, s)
				}
			}
		}
		d.PrefixTable[prefix] = &PrefixRule{Substitutions: subs}
	}
	return scanner.Err()
}

// LoadSuffixTable reads suffix-table rows of the form
// "suffix<sep>admissible" where admissible is "1" (Admissible, recorded as
// a split point) or "0" (Pass-through, continue without recording).
func (d *DataStore) LoadSuffixTable(r io.Reader, sep string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitFields(line, sep)
		if len(fields) < 2 {
			continue
		}
		d.SuffixTable[fields[0]] = fields[1] != "0"
	}
	return scanner.Err()
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
