// Package corrections flags lexicons whose content looks like a
// correctable slip rather than a genuine spelling error — currently just
// runs of extra whitespace — and records the flag as a structured
// [graph.Correction] rather than rewriting the text, so a downstream
// collaborator (e.g. a web editor) can decide how to present it.
package corrections

import (
	"unicode"

	"github.com/bahasakita/teks/graph"
)

// DetectDoubleSpace scans every lexicon's lexemes for a suffix containing
// more than one whitespace character and appends an extra-space
// Correction suggesting the word followed by a single space. The
// backing text is left untouched; only Lexicon.Corrections is populated
// on the returned Graph.
func DetectDoubleSpace(g *graph.Graph) *graph.Graph {
	out := &graph.Graph{
		Text:      g.Text,
		UsingKeys: g.UsingKeys,
		Lexicons:  make([]graph.Lexicon, len(g.Lexicons)),
	}

	for ci, lexicon := range g.Lexicons {
		next := lexicon
		next.Corrections = nil

		for i, lex := range lexicon.Lexemes {
			suffix := g.GetLexemeSuffix(lex)
			if countWhitespace(suffix) <= 1 {
				continue
			}
			next.Corrections = append(next.Corrections, graph.Correction{
				StartLexeme: i,
				EndLexeme:   i,
				Type:        graph.CorrectionExtraSpace,
				Suggestion:  g.GetWord(lex) + " ",
			})
		}

		out.Lexicons[ci] = next
	}

	return out
}

func countWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
