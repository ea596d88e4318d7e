// Package graph implements the offset-based token graph that the rest of
// the pipeline reads and rewrites: Graph owns a backing text buffer and an
// ordered sequence of Lexicon (punctuation-delimited sentence fragments),
// each holding an ordered sequence of Lexeme (word tokens).
//
// A Graph never mutates the text of an existing Lexeme in place. Passes
// that want to change a word's surface form build a fresh output Graph and
// append words to it with PushWord, which grows the backing buffer and
// decides whether the new lexeme keeps or regenerates its stable key.
package graph

import (
	"math/rand"
)

// PosTag classifies a Lexeme's part of speech. The core never infers this
// tag; it exists so a downstream collaborator can attach one.
type PosTag int

const (
	PosUnset PosTag = iota
	PosUnknown
)

func (p PosTag) String() string {
	if p == PosUnknown {
		return "Unknown"
	}
	return "Unset"
}

// Metadata carries identity and tagging information for a Lexeme.
type Metadata struct {
	// Key is a non-zero stable identifier when the owning Graph has
	// UsingKeys set, else 0.
	Key uint64
	Pos PosTag
}

// Lexeme is one word token: its span in the owning Graph's Text, the
// whitespace following it, and identity metadata.
type Lexeme struct {
	Offset   int
	Length   int
	Suffix   int
	Metadata Metadata
}

// NewLexeme returns an empty Lexeme starting at offset, for callers (the
// tokenizer) building a Graph incrementally.
func NewLexeme(offset int) Lexeme {
	return Lexeme{Offset: offset}
}

// SetLength sets Length so the lexeme spans [Offset, pos).
func (l *Lexeme) SetLength(pos int) { l.Length = pos - l.Offset }

// SetSuffix sets Suffix so the trailing whitespace spans [Offset+Length, pos).
func (l *Lexeme) SetSuffix(pos int) { l.Suffix = pos - l.Length - l.Offset }

// Lexicon is one punctuation-delimited sentence fragment: leading
// whitespace (Prefix), the span covering its lexemes (Length), trailing
// punctuation (Suffix), and the ordered lexemes themselves.
type Lexicon struct {
	Offset      int
	Prefix      int
	Length      int
	Suffix      int
	Lexemes     []Lexeme
	Corrections []Correction
}

// NewLexicon returns an empty Lexicon starting at offset.
func NewLexicon(offset int) Lexicon {
	return Lexicon{Offset: offset}
}

// SetPrefix sets Prefix so the leading whitespace spans [Offset, pos).
func (c *Lexicon) SetPrefix(pos int) { c.Prefix = pos - c.Offset }

// SetLength sets Length so the lexeme region spans [Offset+Prefix, pos).
func (c *Lexicon) SetLength(pos int) { c.Length = pos - c.Prefix - c.Offset }

// SetSuffix sets Suffix so the trailing punctuation spans
// [Offset+Prefix+Length, pos).
func (c *Lexicon) SetSuffix(pos int) { c.Suffix = pos - c.Length - c.Prefix - c.Offset }

// PushLexeme appends l and grows Length to cover it.
func (c *Lexicon) PushLexeme(l Lexeme) {
	c.SetLength(l.Offset + l.Length + l.Suffix)
	c.Lexemes = append(c.Lexemes, l)
}

// Graph is the token graph: a backing text buffer plus an ordered sequence
// of Lexicon. UsingKeys enables stable per-lexeme identity (see PushWord).
type Graph struct {
	Text      string
	Lexicons  []Lexicon
	UsingKeys bool
}

// New returns an empty Graph over text. usingKeys enables stable-key
// assignment for words appended via PushWord.
func New(text string, usingKeys bool) *Graph {
	return &Graph{Text: text, UsingKeys: usingKeys}
}

// ExistingKey returns the word and stable key for lex if the Graph has
// UsingKeys enabled, else ok is false. Pass the result into PushWord on an
// output Graph to preserve identity across an unchanged rewrite.
func (g *Graph) ExistingKey(lex Lexeme) (word string, key uint64, ok bool) {
	if !g.UsingKeys {
		return "", 0, false
	}
	return g.GetWord(lex), lex.Metadata.Key, true
}

// PushWord appends word to the backing text and returns a new Lexeme
// spanning it. If prior is non-nil and its word matches the appended word
// exactly, the new Lexeme keeps prior's key; otherwise (or if prior is
// nil) a fresh random key is assigned when UsingKeys is set.
func (g *Graph) PushWord(word string, prior *PriorKey) Lexeme {
	l := NewLexeme(len(g.Text))
	g.Text += word
	l.SetLength(len(g.Text))
	if g.UsingKeys {
		if prior != nil && prior.Word == word {
			l.Metadata.Key = prior.Key
		} else {
			l.Metadata.Key = randomKey()
		}
	}
	return l
}

// PriorKey is the (word, key) pair PushWord consults to decide whether a
// rewritten lexeme keeps its predecessor's stable identity.
type PriorKey struct {
	Word string
	Key  uint64
}

// PushStr appends raw text (e.g. a separating space) to the backing buffer
// and returns the new length.
func (g *Graph) PushStr(text string) int {
	g.Text += text
	return len(g.Text)
}

// GetWord returns the substring of Text spanned by lex, or "" if the span
// is out of bounds.
func (g *Graph) GetWord(lex Lexeme) string {
	if lex.Offset+lex.Length <= len(g.Text) {
		return g.Text[lex.Offset : lex.Offset+lex.Length]
	}
	return ""
}

// GetLexemeSuffix returns the whitespace text following lex's word.
func (g *Graph) GetLexemeSuffix(lex Lexeme) string {
	start := lex.Offset + lex.Length
	if start+lex.Suffix <= len(g.Text) {
		return g.Text[start : start+lex.Suffix]
	}
	return ""
}

// GetLexiconPrefix returns the leading whitespace of c.
func (g *Graph) GetLexiconPrefix(c Lexicon) string {
	if c.Offset+c.Prefix <= len(g.Text) {
		return g.Text[c.Offset : c.Offset+c.Prefix]
	}
	return ""
}

// GetLexiconSuffix returns the trailing punctuation region of c.
func (g *Graph) GetLexiconSuffix(c Lexicon) string {
	start := c.Offset + c.Prefix + c.Length
	if start+c.Suffix <= len(g.Text) {
		return g.Text[start : start+c.Suffix]
	}
	return ""
}

// InitHashKeys assigns a fresh random key to every zero-keyed lexeme and
// marks the Graph as using keys.
func (g *Graph) InitHashKeys() {
	for ci := range g.Lexicons {
		lexemes := g.Lexicons[ci].Lexemes
		for li := range lexemes {
			if lexemes[li].Metadata.Key == 0 {
				lexemes[li].Metadata.Key = randomKey()
			}
		}
	}
	g.UsingKeys = true
}

// StripHashKeys zeroes every lexeme key and marks the Graph as not using
// keys.
func (g *Graph) StripHashKeys() {
	for ci := range g.Lexicons {
		lexemes := g.Lexicons[ci].Lexemes
		for li := range lexemes {
			lexemes[li].Metadata.Key = 0
		}
	}
	g.UsingKeys = false
}

// TrimEnd removes trailing whitespace from the backing text and shrinks
// the last lexeme's suffix and last lexicon's length to match, so that
// after TrimEnd the final lexeme's Suffix is 0. When g has no lexicons, or
// its last lexicon has no lexemes, TrimEnd leaves g unchanged, trailing
// whitespace included.
func (g *Graph) TrimEnd() {
	if len(g.Lexicons) == 0 {
		return
	}
	lexicon := &g.Lexicons[len(g.Lexicons)-1]
	if len(lexicon.Lexemes) == 0 {
		return
	}
	lexeme := &lexicon.Lexemes[len(lexicon.Lexemes)-1]

	oldLen := len(g.Text)
	newLen := oldLen
	for newLen > 0 && isTrimSpace(g.Text[newLen-1]) {
		newLen--
	}
	if newLen < oldLen {
		g.Text = g.Text[:newLen]
		lexeme.SetSuffix(newLen)
		lexicon.SetLength(newLen)
	}
}

func isTrimSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// randomKey returns a non-zero random 64-bit identifier.
func randomKey() uint64 {
	for {
		if k := rand.Uint64(); k != 0 {
			return k
		}
	}
}
