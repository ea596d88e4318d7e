package spellengine

import (
	"github.com/bahasakita/teks/graph"
)

// LookupCompound translates every lexeme of g's lexicons into its best
// single-word correction, or a compound merge with the previous lexeme, or
// a two-word split — whichever scores best (§4.2.3) — and returns a fresh
// Graph with the chosen surface forms. The output preserves g's lexicon
// structure; trailing whitespace is trimmed so the final lexeme's suffix
// is zero-length.
func (e *Engine) LookupCompound(g *graph.Graph, maxEditDistance int) *graph.Graph {
	out := graph.New("", g.UsingKeys)

	for _, lexicon := range g.Lexicons {
		outLexicon := graph.NewLexicon(len(out.Text))
		if prefix := g.GetLexiconPrefix(lexicon); prefix != "" {
			out.PushStr(prefix)
		}
		outLexicon.SetPrefix(len(out.Text))

		words := make([]string, len(lexicon.Lexemes))
		for i, lex := range lexicon.Lexemes {
			words[i] = g.GetWord(lex)
		}

		chosen := e.correctWords(words, maxEditDistance)

		var prevLex *graph.Lexeme
		for i := range words {
			surface := chosen[i]
			if surface == "" {
				// consumed by a merge with the previous lexeme
				continue
			}

			if prevLex != nil {
				out.PushStr(" ")
				prevLex.SetSuffix(len(out.Text))
			}

			var prior *graph.PriorKey
			if g.UsingKeys {
				if pw, key, ok := g.ExistingKey(lexicon.Lexemes[i]); ok {
					prior = &graph.PriorKey{Word: pw, Key: key}
				}
			}
			newLex := out.PushWord(surface, prior)
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

// correctWords runs the per-lexicon compound algorithm over an ordered
// list of surface words, returning one output surface per input word. A
// merge collapses two input words into one output slot, leaving the
// earlier slot empty (skipped by the caller) and the later slot holding
// the joined surface.
func (e *Engine) correctWords(words []string, maxEditDistance int) []string {
	out := make([]string, len(words))
	picks := make([]Suggestion, len(words))
	lastCombi := false

	for i, word := range words {
		top := e.Lookup(word, Top, maxEditDistance)

		if i > 0 && !lastCombi {
			merged := words[i-1] + words[i]
			topMerge := e.Lookup(merged, Top, maxEditDistance)

			if len(topMerge) > 0 {
				best1 := picks[i-1]
				var best2 Suggestion
				if len(top) > 0 {
					best2 = top[0]
				} else {
					best2 = Suggestion{
						Term:     words[i],
						Distance: maxEditDistance + 1,
						Count:    tinyCount(runeLen(words[i])),
					}
				}

				distance1 := best1.Distance + best2.Distance
				bayes := float64(best1.Count) / float64(e.cfg.CorpusWordCount) * float64(best2.Count)

				if topMerge[0].Distance+1 < distance1 ||
					(topMerge[0].Distance+1 == distance1 && float64(topMerge[0].Count) > bayes) {
					topMerge[0].Distance++
					out[i-1] = ""
					out[i] = topMerge[0].Term
					picks[i] = topMerge[0]
					lastCombi = true
					continue
				}
			}
		}
		lastCombi = false

		switch {
		case len(top) > 0 && (top[0].Distance == 0 || runeLen(word) == 1):
			out[i] = top[0].Term
			picks[i] = top[0]

		default:
			pick := e.bestSplit(word, top, maxEditDistance)
			if pick.Term == "" {
				pick = Suggestion{
					Term:     word,
					Distance: maxEditDistance + 1,
					Count:    tinyCount(runeLen(word)),
				}
			}
			out[i] = pick.Term
			picks[i] = pick
		}
	}

	return out
}

// tinyCount is the synthetic frequency assigned to a word with no
// acceptable correction, per §4.2.3 step 5: 10 / 10^len(word).
func tinyCount(wordLen int) int64 {
	denom := int64(1)
	for i := 0; i < wordLen; i++ {
		if denom > (1<<62)/10 {
			return 0
		}
		denom *= 10
	}
	return 10 / denom
}

// bestSplit finds the best two-way split of word, scored per the
// count-boost table in §4.2.3. top is word's own single-word top
// suggestion (possibly empty).
func (e *Engine) bestSplit(word string, top []Suggestion, maxEditDistance int) Suggestion {
	runes := []rune(word)
	n := len(runes)

	var best Suggestion
	haveBest := len(top) > 0
	if haveBest {
		best = top[0]
	}

	if n <= 1 {
		if haveBest {
			return best
		}
		return Suggestion{}
	}

	for j := 1; j < n; j++ {
		part1 := string(runes[:j])
		part2 := string(runes[j:])

		sug1 := e.Lookup(part1, Top, maxEditDistance)
		if len(sug1) == 0 {
			continue
		}
		sug2 := e.Lookup(part2, Top, maxEditDistance)
		if len(sug2) == 0 {
			continue
		}

		splitTerm := sug1[0].Term + " " + sug2[0].Term
		distance := damerauLevenshtein(word, splitTerm, maxEditDistance)
		if distance < 0 {
			distance = maxEditDistance + 1
		}

		if haveBest {
			if distance > best.Distance {
				continue
			}
			if distance < best.Distance {
				haveBest = false
			}
		}

		count := e.splitCount(splitTerm, word, sug1[0], sug2[0], top)

		candidate := Suggestion{Term: splitTerm, Distance: distance, Count: count}
		if !haveBest || candidate.Count > best.Count {
			best = candidate
			haveBest = true
		}
	}

	return best
}

// splitCount implements the count-boost table for split candidate
// splitTerm against original and the single-word top pick (§4.2.3).
func (e *Engine) splitCount(splitTerm, original string, left, right Suggestion, top []Suggestion) int64 {
	if bigram, ok := e.bigrams[splitTerm]; ok {
		switch {
		case len(top) > 0 && splitTerm == original:
			return maxInt64(bigram, top[0].Count+2)
		case len(top) > 0 && (left.Term == top[0].Term || right.Term == top[0].Term):
			return maxInt64(bigram, top[0].Count+1)
		default:
			return bigram
		}
	}

	if len(top) == 0 && splitTerm == original {
		return maxInt64(e.bigramMin, maxInt64(left.Count, right.Count)+2)
	}

	estimate := saturatingInt64(float64(left.Count) / float64(e.cfg.CorpusWordCount) * float64(right.Count))
	return minInt64(e.bigramMin, estimate)
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
