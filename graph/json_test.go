package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bahasakita/teks/internal/engerr"
)

func TestJSONRoundTrip(t *testing.T) {
	g := New("halo dunia", true)
	first := NewLexeme(0)
	first.SetLength(4)
	first.SetSuffix(5)
	first.Metadata.Key = 7
	second := NewLexeme(5)
	second.SetLength(10)

	c := NewLexicon(0)
	c.PushLexeme(first)
	c.PushLexeme(second)
	g.Lexicons = []Lexicon{c}

	raw, err := g.ToJSON()
	require.NoError(t, err)

	back, err := FromJSON(raw)
	require.NoError(t, err)
	require.Equal(t, g.Text, back.Text)
	require.Equal(t, g.UsingKeys, back.UsingKeys)
	require.Equal(t, g.Lexicons, back.Lexicons)
}

func TestJSONOmitsZeroMetadata(t *testing.T) {
	g := New("hi", false)
	lex := NewLexeme(0)
	lex.SetLength(2)
	c := NewLexicon(0)
	c.PushLexeme(lex)
	g.Lexicons = []Lexicon{c}

	raw, err := g.ToJSON()
	require.NoError(t, err)
	require.NotContains(t, string(raw), `"metadata"`)
	require.NotContains(t, string(raw), `"prefix"`)
	require.NotContains(t, string(raw), `"using_keys"`)
}

func TestFromJSONMalformedIsInputError(t *testing.T) {
	_, err := FromJSON([]byte("{not json"))
	require.Error(t, err)
	require.True(t, engerr.IsInput(err))
}
