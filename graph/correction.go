package graph

// CorrectionType classifies a Correction. The core only ever produces
// CorrectionExtraSpace; the type is a string (not an enum of one) so a
// downstream collaborator can introduce further correction kinds without
// changing the wire shape.
type CorrectionType string

// CorrectionExtraSpace flags a lexeme whose trailing whitespace run holds
// more than one whitespace character.
const CorrectionExtraSpace CorrectionType = "extra-space"

// Correction marks the lexemes [StartLexeme, EndLexeme] within a Lexicon
// as flagged for downstream highlighting (e.g. a web editor marking up
// suspected mistakes), carrying an optional suggested replacement.
// StartLexeme and EndLexeme are indices into the owning Lexicon.Lexemes,
// not Graph-wide offsets.
type Correction struct {
	StartLexeme int
	EndLexeme   int
	Type        CorrectionType
	Suggestion  string
}
