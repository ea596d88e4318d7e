// Command dictbuild tallies unigram and bigram word frequencies from a
// raw Indonesian text corpus into the line-oriented dictionary files
// data.LoadUnigramFreq/LoadBigramFreq consume (§6.1).
//
//	go run ./cmd/dictbuild -input corpus.txt -unigram-out unigram_freq.txt -bigram-out bigram_freq.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bahasakita/teks/tokenizer"
)

const scannerBufSize = 1 << 20 // 1 MB

func main() {
	inputPath := flag.String("input", "", "path to raw corpus text file (defaults to stdin)")
	unigramOut := flag.String("unigram-out", "unigram_freq.txt", "output path for unigram frequencies")
	bigramOut := flag.String("bigram-out", "bigram_freq.txt", "output path for bigram frequencies")
	flag.Parse()

	if err := run(*inputPath, *unigramOut, *bigramOut); err != nil {
		fmt.Fprintf(os.Stderr, "dictbuild: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, unigramOut, bigramOut string) error {
	var r io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	unigrams := make(map[string]int64)
	bigrams := make(map[string]int64)

	tok := tokenizer.New(nil)
	scanner := bufio.NewScanner(r)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	for scanner.Scan() {
		g := tok.Parse(scanner.Text())
		for _, lexicon := range g.Lexicons {
			var prev string
			for i, lex := range lexicon.Lexemes {
				word := g.GetWord(lex)
				unigrams[word]++
				if i > 0 {
					bigrams[prev+" "+word]++
				}
				prev = word
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan corpus: %w", err)
	}

	if err := writeCounts(unigramOut, unigrams); err != nil {
		return fmt.Errorf("write unigram frequencies: %w", err)
	}
	if err := writeCounts(bigramOut, bigrams); err != nil {
		return fmt.Errorf("write bigram frequencies: %w", err)
	}

	fmt.Fprintf(os.Stderr, "unigrams: %d distinct, bigrams: %d distinct\n", len(unigrams), len(bigrams))
	return nil
}

// writeCounts writes term<space>count lines sorted by descending count,
// ties broken alphabetically for deterministic output.
func writeCounts(path string, counts map[string]int64) error {
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(out)
	for _, term := range terms {
		if _, err := fmt.Fprintf(w, "%s %d\n", term, counts[term]); err != nil {
			_ = out.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = out.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return out.Close()
}
