package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bahasakita/teks/config"
	"github.com/bahasakita/teks/data"
	"github.com/bahasakita/teks/internal/engerr"
	"github.com/bahasakita/teks/spellengine"
	"github.com/bahasakita/teks/stemmer"
	"github.com/bahasakita/teks/tokenizer"
)

// newFixturePipeline loads the real data/dict fixtures through the
// config/testdata/pipeline.yaml config, exercising the full
// config -> data -> spellengine/stemmer -> pipeline wiring end to end.
func newFixturePipeline(t *testing.T) (*Pipeline, *config.Config) {
	t.Helper()

	cfg, err := config.Load("../config/testdata/pipeline.yaml")
	require.NoError(t, err)

	store, err := data.LoadAll(cfg.Dictionaries.ToDataPaths())
	require.NoError(t, err)
	if runes := cfg.PunctuationRunes(); len(runes) > 0 {
		store.Punctuations = runes
	}

	spell, err := spellengine.New(store, cfg.SpellEngine.ToEngineConfig())
	require.NoError(t, err)
	stem := stemmer.New(store)
	tok := tokenizer.New(store.Punctuations)

	return New(tok, spell, stem, nil), cfg
}

func TestRunSpellcheckCorrectsEachLexeme(t *testing.T) {
	p, cfg := newFixturePipeline(t)

	result, err := p.Run("kvcing lir", []Task{TaskSpellcheck}, Options{MaxEditDistance: cfg.MaxEditDistance})
	require.NoError(t, err)
	require.False(t, result.Structured)
	require.Equal(t, "kucing air", result.Rendered)
}

func TestRunStemmingStripsPrefixSuffixAndStopWords(t *testing.T) {
	p, cfg := newFixturePipeline(t)

	result, err := p.Run("menari di sekolahan", []Task{TaskStemming}, Options{
		FilterStopWords: cfg.Stemmer.FilterStopWords,
	})
	require.NoError(t, err)
	require.Equal(t, "tari sekolah", result.Rendered)
}

func TestRunStemmingCompoundPrefix(t *testing.T) {
	p, _ := newFixturePipeline(t)

	result, err := p.Run("pemrograman", []Task{TaskStemming}, Options{})
	require.NoError(t, err)
	require.Equal(t, "program", result.Rendered)
}

func TestRunStemmingReduplication(t *testing.T) {
	p, _ := newFixturePipeline(t)

	result, err := p.Run("buku-buku", []Task{TaskStemming}, Options{})
	require.NoError(t, err)
	require.Equal(t, "buku", result.Rendered)
}

func TestRunNoTasksEchoesInputByteForByte(t *testing.T) {
	p, _ := newFixturePipeline(t)

	const text = " Halo, apa kabar?. "
	result, err := p.Run(text, nil, Options{})
	require.NoError(t, err)
	require.Equal(t, text, result.Rendered)
}

func TestRunTokenizeReturnsStructuredGraph(t *testing.T) {
	p, _ := newFixturePipeline(t)

	result, err := p.Run("kucing air", []Task{TaskTokenize}, Options{})
	require.NoError(t, err)
	require.True(t, result.Structured)
	require.NotNil(t, result.Graph)
	require.Len(t, result.Graph.Lexicons, 1)
	require.Len(t, result.Graph.Lexicons[0].Lexemes, 2)
}

func TestRunDoubleSpaceFlagsExtraWhitespaceInStructuredGraph(t *testing.T) {
	p, _ := newFixturePipeline(t)

	result, err := p.Run("kucing  air", []Task{TaskDoubleSpace, TaskTokenize}, Options{})
	require.NoError(t, err)
	require.True(t, result.Structured)
	require.Len(t, result.Graph.Lexicons, 1)
	require.Len(t, result.Graph.Lexicons[0].Corrections, 1)
	require.Equal(t, "extra-space", string(result.Graph.Lexicons[0].Corrections[0].Type))
}

func TestRunSpellcheckWithoutEngineIsConfigurationError(t *testing.T) {
	tok := tokenizer.New(nil)
	p := New(tok, nil, nil, nil)

	_, err := p.Run("kvcing", []Task{TaskSpellcheck}, Options{})
	require.Error(t, err)
	require.True(t, engerr.IsConfiguration(err))
}

func TestRunUnknownTaskIsInputError(t *testing.T) {
	p, _ := newFixturePipeline(t)

	_, err := p.Run("kucing", []Task{Task("bogus")}, Options{})
	require.Error(t, err)
	require.True(t, engerr.IsInput(err))
}

func TestRunOrdersSpellcheckThenStemming(t *testing.T) {
	p, cfg := newFixturePipeline(t)

	result, err := p.Run("menari", []Task{TaskSpellcheck, TaskStemming}, Options{
		MaxEditDistance: cfg.MaxEditDistance,
		FilterStopWords: cfg.Stemmer.FilterStopWords,
	})
	require.NoError(t, err)
	require.Equal(t, "tari", result.Rendered)
}
