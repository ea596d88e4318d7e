// Package config loads the YAML configuration that shapes a Pipeline's
// collaborators: dictionary file locations and SymSpell/stemmer tuning
// parameters (§4.2.1, §6.1).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bahasakita/teks/data"
	"github.com/bahasakita/teks/internal/engerr"
	"github.com/bahasakita/teks/spellengine"
)

// DictionaryPaths locates the on-disk dictionary files a DataStore loads
// from (§6.1).
type DictionaryPaths struct {
	UnigramFreq  string `yaml:"unigram_freq"`
	BigramFreq   string `yaml:"bigram_freq"`
	RootWords    string `yaml:"root_words"`
	PrefixTable  string `yaml:"prefix_table"`
	SuffixTable  string `yaml:"suffix_table"`
	StopWords    string `yaml:"stop_words"`
	FieldSep     string `yaml:"field_separator"`
	CountMinimum int64  `yaml:"count_minimum"`
}

// ToDataPaths converts p to a data.Paths for DataStore loading.
func (p DictionaryPaths) ToDataPaths() data.Paths {
	return data.Paths{
		UnigramFreq:    p.UnigramFreq,
		BigramFreq:     p.BigramFreq,
		RootWords:      p.RootWords,
		PrefixTable:    p.PrefixTable,
		SuffixTable:    p.SuffixTable,
		StopWords:      p.StopWords,
		FieldSeparator: p.FieldSep,
		CountMinimum:   p.CountMinimum,
	}
}

// SpellEngineConfig mirrors [spellengine.Config] in YAML form.
type SpellEngineConfig struct {
	MaxDictionaryEditDistance int   `yaml:"max_dictionary_edit_distance"`
	PrefixLength              int   `yaml:"prefix_length"`
	CountThreshold            int64 `yaml:"count_threshold"`
	CorpusWordCount           int64 `yaml:"corpus_word_count"`
}

// ToEngineConfig converts c to a spellengine.Config.
func (c SpellEngineConfig) ToEngineConfig() spellengine.Config {
	return spellengine.Config{
		MaxDictionaryEditDistance: c.MaxDictionaryEditDistance,
		PrefixLength:              c.PrefixLength,
		CountThreshold:            c.CountThreshold,
		CorpusWordCount:           c.CorpusWordCount,
		DistanceAlgorithm:         spellengine.Damerau,
	}
}

// StemmerConfig tunes the stemmer stage.
type StemmerConfig struct {
	FilterStopWords bool `yaml:"filter_stop_words"`
}

// Config is the top-level pipeline configuration file.
type Config struct {
	Dictionaries DictionaryPaths   `yaml:"dictionaries"`
	SpellEngine  SpellEngineConfig `yaml:"spell_engine"`
	Stemmer      StemmerConfig     `yaml:"stemmer"`
	// Punctuations overrides the tokenizer's punctuation set; each entry
	// must be a single character. YAML scalars decode as strings, so this
	// is held as []string and converted via PunctuationRunes.
	Punctuations    []string `yaml:"punctuations"`
	MaxEditDistance int      `yaml:"max_edit_distance"`
}

// PunctuationRunes converts Punctuations to the []rune form the tokenizer
// expects, ignoring any entry that is not exactly one character.
func (c Config) PunctuationRunes() []rune {
	runes := make([]rune, 0, len(c.Punctuations))
	for _, p := range c.Punctuations {
		r := []rune(p)
		if len(r) == 1 {
			runes = append(runes, r[0])
		}
	}
	return runes
}

// Load reads and parses a YAML config file from path (§7: a missing file
// or malformed field is a fatal configuration error).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, engerr.Configurationf(err, "reading config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, engerr.Configurationf(err, "parsing config %s", path)
	}

	maxDictDist := cfg.SpellEngine.MaxDictionaryEditDistance
	if maxDictDist == 0 {
		maxDictDist = 2
	}
	if cfg.MaxEditDistance > maxDictDist {
		return nil, engerr.Configuration("max_edit_distance exceeds max_dictionary_edit_distance")
	}
	return &cfg, nil
}
