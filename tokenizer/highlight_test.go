package tokenizer

import (
	"testing"

	"github.com/bahasakita/teks/graph"
)

func TestRenderHighlightedWrapsCorrectedLexeme(t *testing.T) {
	tok := New(nil)
	g := tok.Parse("halo  dunia")

	g.Lexicons[0].Corrections = []graph.Correction{
		{StartLexeme: 0, EndLexeme: 0, Type: graph.CorrectionExtraSpace, Suggestion: "halo "},
	}

	got := RenderHighlighted(g)
	want := `<u-x data-type="extra-space" data-suggestion="halo ">halo  </u-x>dunia`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderHighlightedMatchesRenderWithoutCorrections(t *testing.T) {
	tok := New(nil)
	text := "Halo, apa kabar?"
	g := tok.Parse(text)

	if got := RenderHighlighted(g); got != tok.Render(g) {
		t.Fatalf("got %q, want %q", got, tok.Render(g))
	}
}
