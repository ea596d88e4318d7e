package corrections

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bahasakita/teks/tokenizer"
)

func TestDetectDoubleSpaceFlagsExtraWhitespace(t *testing.T) {
	tok := tokenizer.New(nil)
	g := tok.Parse("halo  dunia")

	out := DetectDoubleSpace(g)
	require.Equal(t, g.Text, out.Text)

	require.Len(t, out.Lexicons, 1)
	corrections := out.Lexicons[0].Corrections
	require.Len(t, corrections, 1)
	require.Equal(t, 0, corrections[0].StartLexeme)
	require.Equal(t, 0, corrections[0].EndLexeme)
	require.Equal(t, "extra-space", string(corrections[0].Type))
	require.Equal(t, "halo ", corrections[0].Suggestion)
}

func TestDetectDoubleSpaceIgnoresSingleSpaces(t *testing.T) {
	tok := tokenizer.New(nil)
	g := tok.Parse("halo dunia, apa kabar?")

	out := DetectDoubleSpace(g)
	for _, lexicon := range out.Lexicons {
		require.Empty(t, lexicon.Corrections)
	}
}

func TestDetectDoubleSpaceLeavesTextUntouched(t *testing.T) {
	tok := tokenizer.New(nil)
	text := "ini  teks   dengan spasi ganda."
	g := tok.Parse(text)

	out := DetectDoubleSpace(g)
	require.Equal(t, text, tok.Render(out))
}
