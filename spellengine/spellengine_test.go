package spellengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bahasakita/teks/data"
)

func fixtureStore() *data.DataStore {
	d := data.New()
	words := map[string]int64{
		"kucing":  21,
		"air":     150,
		"lari":    80,
		"program": 95,
		"buku":    60,
		"ke":      500,
	}
	for w, c := range words {
		d.WordFreq[w] = c
		if n := len([]rune(w)); n > d.MaxWordLength {
			d.MaxWordLength = n
		}
	}
	d.WordFreq["kepada"] = 200
	d.Bigrams["ke pada"] = 180
	d.BigramMinCount = 180
	return d
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(fixtureStore(), Config{})
	require.NoError(t, err)
	return e
}

func TestLookupExactDictionaryWord(t *testing.T) {
	e := newEngine(t)
	got := e.Lookup("kucing", Top, 2)
	require.Len(t, got, 1)
	require.Equal(t, Suggestion{Term: "kucing", Distance: 0, Count: 21}, got[0])
}

func TestLookupSingleSubstitution(t *testing.T) {
	e := newEngine(t)
	got := e.Lookup("kvcing", Top, 2)
	require.Len(t, got, 1)
	require.Equal(t, "kucing", got[0].Term)
	require.Equal(t, 1, got[0].Distance)
	require.EqualValues(t, 21, got[0].Count)
}

func TestLookupTopNeverReturnsMoreThanOne(t *testing.T) {
	e := newEngine(t)
	for _, input := range []string{"kucing", "kvcing", "lir", "nonsense"} {
		got := e.Lookup(input, Top, 2)
		require.LessOrEqual(t, len(got), 1, "input=%q", input)
	}
}

func TestLookupAllIncludesEveryCandidateWithinBound(t *testing.T) {
	e := newEngine(t)
	got := e.Lookup("kvcing", All, 2)
	require.NotEmpty(t, got)
	var terms []string
	for _, s := range got {
		require.LessOrEqual(t, s.Distance, 2)
		terms = append(terms, s.Term)
	}
	require.Contains(t, terms, "kucing")
}

func TestLookupBeyondMaxLengthReturnsEmpty(t *testing.T) {
	e := newEngine(t)
	got := e.Lookup("kucingkucingkucingkucing", Top, 2)
	require.Empty(t, got)
}

func TestLookupSortedByDistanceThenCount(t *testing.T) {
	e := newEngine(t)
	got := e.Lookup("xyz", All, 2)
	for i := 1; i < len(got); i++ {
		require.True(t, got[i-1].Distance <= got[i].Distance)
		if got[i-1].Distance == got[i].Distance {
			require.True(t, got[i-1].Count >= got[i].Count)
		}
	}
}

func TestDamerauLevenshteinKnownDistances(t *testing.T) {
	tests := []struct {
		a, b string
		max  int
		want int
	}{
		{"kucing", "kucing", 2, 0},
		{"kucing", "kvcing", 2, 1},
		{"lir", "air", 2, 1},
		{"", "abc", 3, 3},
		{"abc", "", 3, 3},
		{"ab", "ba", 2, 1}, // adjacent transposition
		{"kitten", "sitting", 3, 3},
	}
	for _, tt := range tests {
		got := damerauLevenshtein(tt.a, tt.b, tt.max)
		require.Equal(t, tt.want, got, "distance(%q,%q)", tt.a, tt.b)
	}
}

func TestDamerauLevenshteinExceedsBoundReturnsNegative(t *testing.T) {
	require.Equal(t, -1, damerauLevenshtein("kitten", "sitting", 1))
}
