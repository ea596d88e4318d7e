// Package tokenizer parses free-form Indonesian text into a [graph.Graph]
// and renders a Graph back to text. The character iterator is grapheme-safe
// (it walks grapheme clusters via [uniseg.Graphemes], not bare runes) so
// combining marks in loan words are never split mid-cluster.
package tokenizer

import (
	"github.com/rivo/uniseg"

	"github.com/bahasakita/teks/graph"
)

// DefaultPunctuations is the sentence-terminating character set used when
// a Tokenizer is constructed with New and no explicit set (§6.1).
var DefaultPunctuations = []rune{'.', ',', ';', ':', '?', '!', '\n'}

// Tokenizer parses text into a Graph and renders a Graph back to text,
// using a configurable punctuation set to decide lexicon boundaries.
type Tokenizer struct {
	punctuations map[rune]struct{}
}

// New returns a Tokenizer that splits lexicons on punctuations. A nil or
// empty slice falls back to DefaultPunctuations.
func New(punctuations []rune) *Tokenizer {
	if len(punctuations) == 0 {
		punctuations = DefaultPunctuations
	}
	set := make(map[rune]struct{}, len(punctuations))
	for _, r := range punctuations {
		set[r] = struct{}{}
	}
	return &Tokenizer{punctuations: set}
}

func (t *Tokenizer) isPunctuation(r rune) bool {
	_, ok := t.punctuations[r]
	return ok
}

// cluster is one grapheme-cluster-aligned run decoded from text, carrying
// its byte offsets so Parse can build offset-based Lexeme/Lexicon spans.
type cluster struct {
	text  string
	start int
	end   int
}

func clusters(text string) []cluster {
	out := make([]cluster, 0, len(text))
	g := uniseg.NewGraphemes(text)
	pos := 0
	for g.Next() {
		s := g.Str()
		out = append(out, cluster{text: s, start: pos, end: pos + len(s)})
		pos += len(s)
	}
	return out
}

// isWhitespace reports whether a grapheme cluster is whitespace. A cluster
// is whitespace only if its entire content is a single space-like rune;
// multi-rune clusters (emoji, combining sequences) are never whitespace.
func isWhitespace(c string) bool {
	r := []rune(c)
	if len(r) != 1 {
		return false
	}
	switch r[0] {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x00A0, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

// Parse scans text into a Graph (§4.1), leaving text untouched so the
// Graph's backing buffer is always the caller's original bytes: the
// round-trip invariant (§8.1.1) requires Render to echo text exactly,
// which a normalizing rewrite of the stored buffer would break for any
// input using decomposed diacritics. A punctuation character terminates
// the current lexicon and is absorbed as its suffix; a run of whitespace
// becomes either the current lexicon's prefix (if no lexemes yet) or the
// previous lexeme's suffix; any other run becomes a new lexeme. A
// trailing non-empty lexicon (lexemes or a prefix) is kept.
func (t *Tokenizer) Parse(text string) *graph.Graph {
	g := graph.New(text, false)
	var lexicons []graph.Lexicon
	current := graph.NewLexicon(0)

	cs := clusters(text)
	i := 0
	for i < len(cs) {
		c := cs[i]
		r := []rune(c.text)

		switch {
		case len(r) == 1 && t.isPunctuation(r[0]):
			current.SetSuffix(c.end)
			lexicons = append(lexicons, current)
			current = graph.NewLexicon(c.end)
			i++

		case isWhitespace(c.text):
			j := i + 1
			end := c.end
			for j < len(cs) && isWhitespace(cs[j].text) {
				end = cs[j].end
				j++
			}
			if len(current.Lexemes) == 0 {
				current.SetPrefix(end)
			} else {
				last := &current.Lexemes[len(current.Lexemes)-1]
				last.SetSuffix(end)
				current.SetLength(end)
			}
			i = j

		default:
			start := c.start
			end := c.end
			j := i + 1
			for j < len(cs) {
				nr := []rune(cs[j].text)
				if isWhitespace(cs[j].text) || (len(nr) == 1 && t.isPunctuation(nr[0])) {
					break
				}
				end = cs[j].end
				j++
			}
			lexeme := graph.NewLexeme(start)
			lexeme.SetLength(end)
			current.PushLexeme(lexeme)
			i = j
		}
	}

	if len(current.Lexemes) > 0 || current.Prefix > 0 {
		lexicons = append(lexicons, current)
	}

	g.Lexicons = lexicons
	return g
}

// Render reconstructs text from g (§4.1): prefix, then each lexeme's word
// and suffix, then the lexicon suffix, for every lexicon in order.
func (t *Tokenizer) Render(g *graph.Graph) string {
	var sb []byte
	for _, lexicon := range g.Lexicons {
		sb = append(sb, g.GetLexiconPrefix(lexicon)...)
		for _, lexeme := range lexicon.Lexemes {
			sb = append(sb, g.GetWord(lexeme)...)
			sb = append(sb, g.GetLexemeSuffix(lexeme)...)
		}
		sb = append(sb, g.GetLexiconSuffix(lexicon)...)
	}
	return string(sb)
}

// RenderFlat concatenates every lexeme's word separated by a single space,
// discarding all original whitespace and punctuation (§4.1).
func (t *Tokenizer) RenderFlat(g *graph.Graph) string {
	var sb []byte
	for _, lexicon := range g.Lexicons {
		for _, lexeme := range lexicon.Lexemes {
			sb = append(sb, g.GetWord(lexeme)...)
			sb = append(sb, ' ')
		}
	}
	if len(sb) > 0 {
		sb = sb[:len(sb)-1]
	}
	return string(sb)
}
