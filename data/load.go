package data

import (
	"os"

	"github.com/bahasakita/teks/internal/engerr"
)

// Paths locates the on-disk dictionary files a DataStore loads from
// (§6.1). Any path left empty skips that loader.
type Paths struct {
	UnigramFreq    string
	BigramFreq     string
	RootWords      string
	PrefixTable    string
	SuffixTable    string
	StopWords      string
	FieldSeparator string
	CountMinimum   int64
}

// LoadAll builds a DataStore from the files named in paths, returning a
// configuration error (§7) if a non-empty path cannot be opened.
func LoadAll(paths Paths) (*DataStore, error) {
	d := New()

	loaders := []struct {
		path string
		load func(*os.File) error
	}{
		{paths.UnigramFreq, func(f *os.File) error {
			return d.LoadUnigramFreq(f, paths.FieldSeparator, paths.CountMinimum)
		}},
		{paths.BigramFreq, func(f *os.File) error { return d.LoadBigramFreq(f, paths.FieldSeparator) }},
		{paths.RootWords, func(f *os.File) error { return d.LoadRootWords(f) }},
		{paths.PrefixTable, func(f *os.File) error { return d.LoadPrefixTable(f, paths.FieldSeparator) }},
		{paths.SuffixTable, func(f *os.File) error { return d.LoadSuffixTable(f, paths.FieldSeparator) }},
		{paths.StopWords, func(f *os.File) error { return d.LoadStopWords(f) }},
	}

	for _, l := range loaders {
		if l.path == "" {
			continue
		}
		f, err := os.Open(l.path)
		if err != nil {
			return nil, engerr.Configurationf(err, "opening dictionary file %s", l.path)
		}
		err = l.load(f)
		closeErr := f.Close()
		if err != nil {
			return nil, engerr.Configurationf(err, "loading dictionary file %s", l.path)
		}
		if closeErr != nil {
			return nil, engerr.Configurationf(closeErr, "closing dictionary file %s", l.path)
		}
	}

	return d, nil
}
