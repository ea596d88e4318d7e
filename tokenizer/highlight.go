package tokenizer

import "github.com/bahasakita/teks/graph"

// RenderHighlighted reconstructs text from g like Render, but wraps any
// lexeme that starts a Lexicon Correction in a "<u-x data-type=\"...\"
// data-suggestion=\"...\">...</u-x>" span, so a caller can hand the result
// straight to a web editor for highlighting without re-running detection.
func RenderHighlighted(g *graph.Graph) string {
	var sb []byte
	for _, lexicon := range g.Lexicons {
		sb = append(sb, g.GetLexiconPrefix(lexicon)...)
		for i, lexeme := range lexicon.Lexemes {
			correction, ok := correctionStartingAt(lexicon.Corrections, i)
			if !ok {
				sb = append(sb, g.GetWord(lexeme)...)
				sb = append(sb, g.GetLexemeSuffix(lexeme)...)
				continue
			}

			sb = append(sb, `<u-x data-type="`...)
			sb = append(sb, string(correction.Type)...)
			sb = append(sb, '"')
			if correction.Suggestion != "" {
				sb = append(sb, ` data-suggestion="`...)
				sb = append(sb, correction.Suggestion...)
				sb = append(sb, '"')
			}
			sb = append(sb, '>')
			sb = append(sb, g.GetWord(lexeme)...)
			sb = append(sb, g.GetLexemeSuffix(lexeme)...)
			sb = append(sb, "</u-x>"...)
		}
		sb = append(sb, g.GetLexiconSuffix(lexicon)...)
	}
	return string(sb)
}

func correctionStartingAt(corrections []graph.Correction, lexemeIdx int) (graph.Correction, bool) {
	for _, c := range corrections {
		if c.StartLexeme == lexemeIdx {
			return c, true
		}
	}
	return graph.Correction{}, false
}
