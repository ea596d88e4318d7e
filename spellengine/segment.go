package spellengine

import "math"

// SegmentedWord is one token produced by Segment.
type SegmentedWord struct {
	Term     string
	Distance int
	Count    int64
}

// Segment inserts spaces into a space-less input to maximize the sum of
// log-frequencies minus edit-distance penalties (§4.2.4), an auxiliary
// feature distinct from LookupCompound: it operates on raw unsegmented
// text rather than a Graph of already-delimited lexemes. At each position
// the dynamic program only considers candidate words up to maxLength
// runes long, bounding the per-position inner loop the same way the
// reference implementation bounds its composition window, even though
// the outer table (needed for backtrace) is sized to the input.
func (e *Engine) Segment(input string, maxEditDistance int) []SegmentedWord {
	runes := []rune(input)
	n := len(runes)
	if n == 0 {
		return nil
	}

	window := e.maxLength
	if window <= 0 {
		window = 1
	}

	type cell struct {
		distance int
		cost     float64
		prevEnd  int
		term     string
		count    int64
	}

	best := make([]cell, n+1)
	best[0] = cell{cost: 0}

	for end := 1; end <= n; end++ {
		start := end - window
		if start < 0 {
			start = 0
		}

		bestCell := cell{cost: math.Inf(1)}
		for j := start; j < end; j++ {
			part := string(runes[j:end])
			partLen := end - j

			var term string
			var count int64
			var distance int

			if c, ok := e.wordFreq[part]; ok {
				term, count, distance = part, c, 0
			} else if sug := e.Lookup(part, Top, maxEditDistance); len(sug) > 0 {
				term, count, distance = sug[0].Term, sug[0].Count, sug[0].Distance
			} else {
				term, count, distance = part, tinyCount(partLen), maxEditDistance+1
			}

			// log10((count+1)/corpus) penalized by edit distance; the +1
			// keeps zero-count fallback parts finite.
			prob := math.Log10(float64(count+1) / float64(e.cfg.CorpusWordCount))
			segCost := best[j].cost - prob + float64(distance)

			if segCost < bestCell.cost {
				bestCell = cell{
					distance: best[j].distance + distance,
					cost:     segCost,
					prevEnd:  j,
					term:     term,
					count:    count,
				}
			}
		}

		best[end] = bestCell
	}

	// Walk back through best[] to recover the chosen segmentation.
	var reversed []SegmentedWord
	for end := n; end > 0; end = best[end].prevEnd {
		c := best[end]
		reversed = append(reversed, SegmentedWord{Term: c.term, Distance: c.distance - best[c.prevEnd].distance, Count: c.count})
	}

	out := make([]SegmentedWord, len(reversed))
	for i, w := range reversed {
		out[len(reversed)-1-i] = w
	}
	return out
}
