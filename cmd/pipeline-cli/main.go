// Command pipeline-cli runs the Indonesian text-analysis pipeline over
// stdin or a file.
//
//	go run ./cmd/pipeline-cli -config pipeline.yaml -tasks spellcheck,stemming < input.txt
//
// With -tasks including "tokenize", output is the structured JSON graph;
// otherwise it is the rendered text.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/bahasakita/teks/config"
	"github.com/bahasakita/teks/data"
	"github.com/bahasakita/teks/pipeline"
	"github.com/bahasakita/teks/spellengine"
	"github.com/bahasakita/teks/stemmer"
	"github.com/bahasakita/teks/tokenizer"
)

func main() {
	configPath := flag.String("config", "pipeline.yaml", "path to pipeline YAML config")
	inputPath := flag.String("input", "", "path to input text file (defaults to stdin)")
	tasksFlag := flag.String("tasks", "spellcheck,stemming", "comma-separated pipeline tasks")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *inputPath, *tasksFlag, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "pipeline-cli:", err)
		os.Exit(1)
	}
}

func run(configPath, inputPath, tasksFlag string, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := data.LoadAll(cfg.Dictionaries.ToDataPaths())
	if err != nil {
		return err
	}
	if runes := cfg.PunctuationRunes(); len(runes) > 0 {
		store.Punctuations = runes
	}

	spell, err := spellengine.New(store, cfg.SpellEngine.ToEngineConfig())
	if err != nil {
		return err
	}
	stem := stemmer.New(store)
	tok := tokenizer.New(store.Punctuations)

	p := pipeline.New(tok, spell, stem, sugar)

	text, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	tasks := parseTasks(tasksFlag)
	opts := pipeline.Options{
		MaxEditDistance: cfg.MaxEditDistance,
		FilterStopWords: cfg.Stemmer.FilterStopWords,
	}

	result, err := p.Run(text, tasks, opts)
	if err != nil {
		return err
	}

	if result.Structured {
		out, err := result.Graph.ToJSON()
		if err != nil {
			return fmt.Errorf("marshaling graph: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(result.Rendered)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseTasks(raw string) []pipeline.Task {
	var tasks []pipeline.Task
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tasks = append(tasks, pipeline.Task(part))
	}
	return tasks
}
