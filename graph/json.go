package graph

import (
	"encoding/json"

	"github.com/bahasakita/teks/internal/engerr"
)

// jsonMetadata is the wire shape of Metadata: zero-valued fields are
// omitted per §6.2.
type jsonMetadata struct {
	Key uint64 `json:"key,omitempty"`
	Pos string `json:"pos,omitempty"`
}

type jsonLexeme struct {
	Offset   int           `json:"offset"`
	Length   int           `json:"length"`
	Suffix   int           `json:"suffix,omitempty"`
	Metadata *jsonMetadata `json:"metadata,omitempty"`
}

type jsonCorrection struct {
	StartLexeme int    `json:"start_lexeme"`
	EndLexeme   int    `json:"end_lexeme"`
	Type        string `json:"type"`
	Suggestion  string `json:"suggestion,omitempty"`
}

type jsonLexicon struct {
	Offset      int              `json:"offset"`
	Prefix      int              `json:"prefix,omitempty"`
	Length      int              `json:"length"`
	Suffix      int              `json:"suffix,omitempty"`
	Lexemes     []jsonLexeme     `json:"lexemes"`
	Corrections []jsonCorrection `json:"corrections,omitempty"`
}

type jsonGraph struct {
	Text      string        `json:"text"`
	UsingKeys bool          `json:"using_keys,omitempty"`
	Lexicons  []jsonLexicon `json:"lexicons"`
}

// metadataOrNil returns nil when the metadata would serialize as empty, so
// the owning Lexeme's "metadata" field is omitted entirely (§6.2).
func metadataOrNil(key uint64, pos string) *jsonMetadata {
	if key == 0 && pos == "" {
		return nil
	}
	return &jsonMetadata{Key: key, Pos: pos}
}

// ToJSON renders g to its canonical JSON form (§6.2): empty-string fields
// and zero-valued metadata are omitted.
func (g *Graph) ToJSON() ([]byte, error) {
	out := jsonGraph{
		Text:      g.Text,
		UsingKeys: g.UsingKeys,
		Lexicons:  make([]jsonLexicon, len(g.Lexicons)),
	}
	for i, c := range g.Lexicons {
		jc := jsonLexicon{
			Offset:  c.Offset,
			Prefix:  c.Prefix,
			Length:  c.Length,
			Suffix:  c.Suffix,
			Lexemes: make([]jsonLexeme, len(c.Lexemes)),
		}
		for j, l := range c.Lexemes {
			jc.Lexemes[j] = jsonLexeme{
				Offset:   l.Offset,
				Length:   l.Length,
				Suffix:   l.Suffix,
				Metadata: metadataOrNil(l.Metadata.Key, posString(l.Metadata.Pos)),
			}
		}
		if len(c.Corrections) > 0 {
			jc.Corrections = make([]jsonCorrection, len(c.Corrections))
			for j, cr := range c.Corrections {
				jc.Corrections[j] = jsonCorrection{
					StartLexeme: cr.StartLexeme,
					EndLexeme:   cr.EndLexeme,
					Type:        string(cr.Type),
					Suggestion:  cr.Suggestion,
				}
			}
		}
		out.Lexicons[i] = jc
	}
	return json.Marshal(out)
}

// FromJSON parses the canonical JSON form back into a Graph.
func FromJSON(data []byte) (*Graph, error) {
	var in jsonGraph
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, engerr.Inputf(err, "parsing graph JSON")
	}
	g := &Graph{Text: in.Text, UsingKeys: in.UsingKeys}
	g.Lexicons = make([]Lexicon, len(in.Lexicons))
	for i, jc := range in.Lexicons {
		c := Lexicon{
			Offset:  jc.Offset,
			Prefix:  jc.Prefix,
			Length:  jc.Length,
			Suffix:  jc.Suffix,
			Lexemes: make([]Lexeme, len(jc.Lexemes)),
		}
		for j, jl := range jc.Lexemes {
			var key uint64
			var pos string
			if jl.Metadata != nil {
				key = jl.Metadata.Key
				pos = jl.Metadata.Pos
			}
			c.Lexemes[j] = Lexeme{
				Offset: jl.Offset,
				Length: jl.Length,
				Suffix: jl.Suffix,
				Metadata: Metadata{
					Key: key,
					Pos: posFromString(pos),
				},
			}
		}
		if len(jc.Corrections) > 0 {
			c.Corrections = make([]Correction, len(jc.Corrections))
			for j, jcr := range jc.Corrections {
				c.Corrections[j] = Correction{
					StartLexeme: jcr.StartLexeme,
					EndLexeme:   jcr.EndLexeme,
					Type:        CorrectionType(jcr.Type),
					Suggestion:  jcr.Suggestion,
				}
			}
		}
		g.Lexicons[i] = c
	}
	return g, nil
}

func posString(p PosTag) string {
	if p == PosUnset {
		return ""
	}
	return p.String()
}

func posFromString(s string) PosTag {
	if s == "Unknown" {
		return PosUnknown
	}
	return PosUnset
}
