package spellengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bahasakita/teks/tokenizer"
)

func TestLookupCompoundCorrectsEachWord(t *testing.T) {
	e := newEngine(t)
	tok := tokenizer.New(nil)

	g := tok.Parse("kvcing lir")
	out := e.LookupCompound(g, 2)

	require.Equal(t, "kucing air", tok.Render(out))
}

func TestLookupCompoundMergesAcrossLexemes(t *testing.T) {
	e := newEngine(t)
	tok := tokenizer.New(nil)

	g := tok.Parse("ke pada")
	out := e.LookupCompound(g, 2)

	require.Equal(t, "kepada", tok.Render(out))
}

func TestLookupCompoundPreservesLexiconStructure(t *testing.T) {
	e := newEngine(t)
	tok := tokenizer.New(nil)

	g := tok.Parse("kvcing lir. kvcing lir.")
	out := e.LookupCompound(g, 2)

	require.Len(t, out.Lexicons, len(g.Lexicons))
}

func TestLookupCompoundTrimsTrailingWhitespace(t *testing.T) {
	e := newEngine(t)
	tok := tokenizer.New(nil)

	g := tok.Parse("kucing  ")
	out := e.LookupCompound(g, 2)

	if n := len(out.Lexicons); n > 0 {
		lexemes := out.Lexicons[n-1].Lexemes
		if len(lexemes) > 0 {
			require.Zero(t, lexemes[len(lexemes)-1].Suffix)
		}
	}
}

func TestLookupCompoundRegeneratesKeyOnRewrite(t *testing.T) {
	e := newEngine(t)
	tok := tokenizer.New(nil)

	g := tok.Parse("kvcing")
	g.InitHashKeys()
	oldKey := g.Lexicons[0].Lexemes[0].Metadata.Key

	out := e.LookupCompound(g, 2)

	require.Len(t, out.Lexicons[0].Lexemes, 1)
	newKey := out.Lexicons[0].Lexemes[0].Metadata.Key
	require.NotZero(t, newKey)
	require.NotEqual(t, oldKey, newKey)
}

func TestLookupCompoundPreservesKeyWhenUnchanged(t *testing.T) {
	e := newEngine(t)
	tok := tokenizer.New(nil)

	g := tok.Parse("kucing")
	g.InitHashKeys()
	oldKey := g.Lexicons[0].Lexemes[0].Metadata.Key

	out := e.LookupCompound(g, 2)

	require.Equal(t, oldKey, out.Lexicons[0].Lexemes[0].Metadata.Key)
}

func TestTinyCountNeverPanicsOnLongWords(t *testing.T) {
	require.NotPanics(t, func() {
		tinyCount(100)
	})
}
