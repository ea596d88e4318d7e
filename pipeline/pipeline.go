// Package pipeline composes the tokenizer, spell engine, and stemmer into
// the single ordered operation external callers invoke (§4.4, §6.3):
// parse, then any of spellcheck/stemming/init_keys/tokenize in the order
// requested.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/bahasakita/teks/corrections"
	"github.com/bahasakita/teks/graph"
	"github.com/bahasakita/teks/internal/engerr"
	"github.com/bahasakita/teks/spellengine"
	"github.com/bahasakita/teks/stemmer"
	"github.com/bahasakita/teks/tokenizer"
)

// Task names a pipeline stage that may be requested, in addition to the
// implicit leading parse.
type Task string

const (
	TaskSpellcheck  Task = "spellcheck"
	TaskStemming    Task = "stemming"
	TaskInitKeys    Task = "init_keys"
	TaskTokenize    Task = "tokenize"
	TaskDoubleSpace Task = "double_space"
)

// Options configures the optional stages of a Run.
type Options struct {
	// MaxEditDistance bounds spellcheck's compound lookup.
	MaxEditDistance int
	// FilterStopWords discards stemmed stop words during the stemming
	// stage.
	FilterStopWords bool
	// Lexicons, when non-nil, is used in place of parsing Text — it lets
	// a caller supply a pre-built Graph and bypass tokenization.
	Lexicons []graph.Lexicon
}

// Pipeline wires a Tokenizer, SpellEngine, and Stemmer handle into the
// single entry point Run. All three collaborators are immutable after
// construction and Run is safe to call concurrently (§5).
type Pipeline struct {
	tokenizer *tokenizer.Tokenizer
	spell     *spellengine.Engine
	stem      *stemmer.Stemmer
	log       *zap.SugaredLogger
}

// New wires a Pipeline from its collaborators. spell and stem may be nil
// if the caller never requests the spellcheck/stemming tasks; log may be
// nil, in which case a no-op logger is used.
func New(tok *tokenizer.Tokenizer, spell *spellengine.Engine, stem *stemmer.Stemmer, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{tokenizer: tok, spell: spell, stem: stem, log: log}
}

// Result is the outcome of Run: either Rendered text (the default) or a
// structured Graph, when TaskTokenize was requested.
type Result struct {
	Rendered   string
	Graph      *graph.Graph
	Structured bool
}

// Run parses text (or accepts opts.Lexicons in its place) and applies
// tasks in order (§4.4, §6.3).
func (p *Pipeline) Run(text string, tasks []Task, opts Options) (Result, error) {
	start := time.Now()

	var g *graph.Graph
	if opts.Lexicons != nil {
		g = graph.New(text, false)
		g.Lexicons = opts.Lexicons
	} else {
		g = p.tokenizer.Parse(text)
	}

	structured := false
	for _, task := range tasks {
		switch task {
		case TaskSpellcheck:
			if p.spell == nil {
				return Result{}, engerr.Configuration("spellcheck requested but no spell engine configured")
			}
			g = p.spell.LookupCompound(g, opts.MaxEditDistance)

		case TaskStemming:
			if p.stem == nil {
				return Result{}, engerr.Configuration("stemming requested but no stemmer configured")
			}
			g = p.stem.StemGraph(g, opts.FilterStopWords)

		case TaskInitKeys:
			g.InitHashKeys()

		case TaskDoubleSpace:
			g = corrections.DetectDoubleSpace(g)

		case TaskTokenize:
			structured = true

		default:
			return Result{}, engerr.Input("unknown pipeline task: " + string(task))
		}
	}

	p.log.Debugw("pipeline run", "tasks", tasks, "elapsed", time.Since(start))

	if structured {
		return Result{Graph: g, Structured: true}, nil
	}
	return Result{Rendered: p.tokenizer.Render(g)}, nil
}
