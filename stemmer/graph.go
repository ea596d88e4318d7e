package stemmer

import "github.com/bahasakita/teks/graph"

// StemGraph replaces every lexeme's surface form with its stem (§4.4): a
// lexeme whose stem is a member of the stop-word set is dropped entirely
// when filterStopWords is set. A lexeme whose surface form is unchanged
// keeps its stable key; a changed surface form is assigned a fresh key
// when g.UsingKeys is set.
func (s *Stemmer) StemGraph(g *graph.Graph, filterStopWords bool) *graph.Graph {
	out := graph.New("", g.UsingKeys)

	for _, lexicon := range g.Lexicons {
		outLexicon := graph.NewLexicon(len(out.Text))
		if prefix := g.GetLexiconPrefix(lexicon); prefix != "" {
			out.PushStr(prefix)
		}
		outLexicon.SetPrefix(len(out.Text))

		var prevLex *graph.Lexeme
		for _, lex := range lexicon.Lexemes {
			word := g.GetWord(lex)
			stem := s.Stem(word)

			if filterStopWords && s.store.StopWords.Contains(stem) {
				continue
			}

			if prevLex != nil {
				out.PushStr(" ")
				prevLex.SetSuffix(len(out.Text))
			}

			var prior *graph.PriorKey
			if g.UsingKeys {
				if word, key, ok := g.ExistingKey(lex); ok {
					prior = &graph.PriorKey{Word: word, Key: key}
				}
			}
			newLex := out.PushWord(stem, prior)
			outLexicon.PushLexeme(newLex)
			prevLex = &outLexicon.Lexemes[len(outLexicon.Lexemes)-1]
		}

		if suffix := g.GetLexiconSuffix(lexicon); suffix != "" {
			outLexicon.SetLength(len(out.Text))
			out.PushStr(suffix)
		}
		outLexicon.SetSuffix(len(out.Text))
		out.Lexicons = append(out.Lexicons, outLexicon)
	}

	out.TrimEnd()
	return out
}
