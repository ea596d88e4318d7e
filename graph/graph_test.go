package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushWordPreservesKeyOnUnchangedSurface(t *testing.T) {
	g := New("", true)
	first := g.PushWord("kucing", nil)
	require.NotZero(t, first.Metadata.Key)

	prior := &PriorKey{Word: "kucing", Key: first.Metadata.Key}
	second := g.PushWord("kucing", prior)
	require.Equal(t, first.Metadata.Key, second.Metadata.Key)
}

func TestPushWordAssignsFreshKeyOnChangedSurface(t *testing.T) {
	g := New("", true)
	first := g.PushWord("kvcing", nil)

	prior := &PriorKey{Word: "kvcing", Key: first.Metadata.Key}
	second := g.PushWord("kucing", prior)

	require.NotZero(t, second.Metadata.Key)
	require.NotEqual(t, first.Metadata.Key, second.Metadata.Key)
}

func TestPushWordWithoutKeysStaysZero(t *testing.T) {
	g := New("", false)
	lex := g.PushWord("kucing", nil)
	require.Zero(t, lex.Metadata.Key)
}

func TestInitHashKeysFillsOnlyZeroKeys(t *testing.T) {
	g := New("ab", false)
	c := NewLexicon(0)
	preset := NewLexeme(0)
	preset.SetLength(1)
	preset.Metadata.Key = 42
	blank := NewLexeme(1)
	blank.SetLength(2)
	c.Lexemes = append(c.Lexemes, preset, blank)
	c.SetLength(2)
	g.Lexicons = []Lexicon{c}

	g.InitHashKeys()

	require.True(t, g.UsingKeys)
	require.EqualValues(t, 42, g.Lexicons[0].Lexemes[0].Metadata.Key)
	require.NotZero(t, g.Lexicons[0].Lexemes[1].Metadata.Key)
}

func TestStripHashKeysZeroesEveryKey(t *testing.T) {
	g := New("x", true)
	lex := g.PushWord("x", nil)
	c := NewLexicon(0)
	c.PushLexeme(lex)
	g.Lexicons = []Lexicon{c}

	g.StripHashKeys()

	require.False(t, g.UsingKeys)
	require.Zero(t, g.Lexicons[0].Lexemes[0].Metadata.Key)
}

func TestTrimEndShrinksTrailingWhitespace(t *testing.T) {
	g := New("halo  ", false)
	lex := NewLexeme(0)
	lex.SetLength(4)
	lex.SetSuffix(6)
	c := NewLexicon(0)
	c.PushLexeme(lex)
	g.Lexicons = []Lexicon{c}

	g.TrimEnd()

	require.Equal(t, "halo", g.Text)
	require.Zero(t, g.Lexicons[0].Lexemes[0].Suffix)
}

func TestTrimEndNoopOnEmptyGraph(t *testing.T) {
	g := New("", false)
	require.NotPanics(t, g.TrimEnd)
}

func TestGetWordOutOfBoundsReturnsEmpty(t *testing.T) {
	g := New("hi", false)
	lex := NewLexeme(0)
	lex.Length = 99
	require.Equal(t, "", g.GetWord(lex))
}

func TestLexiconSpanContainment(t *testing.T) {
	g := New("halo dunia", false)
	first := NewLexeme(0)
	first.SetLength(4)
	first.SetSuffix(5)
	second := NewLexeme(5)
	second.SetLength(10)

	c := NewLexicon(0)
	c.PushLexeme(first)
	c.PushLexeme(second)
	g.Lexicons = []Lexicon{c}

	lexicon := g.Lexicons[0]
	require.LessOrEqual(t, lexicon.Offset+lexicon.Prefix+lexicon.Length+lexicon.Suffix, len(g.Text))
	for _, lex := range lexicon.Lexemes {
		require.LessOrEqual(t, lex.Offset+lex.Length+lex.Suffix, len(g.Text))
		require.GreaterOrEqual(t, lex.Offset, lexicon.Offset+lexicon.Prefix)
		require.LessOrEqual(t, lex.Offset+lex.Length, lexicon.Offset+lexicon.Prefix+lexicon.Length)
	}
}
