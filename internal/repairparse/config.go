// Package repairparse implements the extraction + repair + parse pipeline
// a configurable set of textual pre-passes followed by a
// recursive-descent parse into the value model, with a full metadata trace
// of which repairs actually fired.
package repairparse

// DuplicateKeyPolicy controls how the object parser handles repeated keys.
type DuplicateKeyPolicy int

const (
	FirstWins DuplicateKeyPolicy = iota
	LastWins
	ErrorOnDuplicate
)

func (p DuplicateKeyPolicy) String() string {
	switch p {
	case FirstWins:
		return "firstWins"
	case LastWins:
		return "lastWins"
	case ErrorOnDuplicate:
		return "error"
	default:
		return "unknown"
	}
}

// Config gates each textual pre-pass and the duplicate-key policy. All
// booleans default to false; DuplicateKeyPolicy defaults to FirstWins.
type Config struct {
	FixSmartQuotes        bool
	StripJSONComments     bool
	ReplacePythonLiterals bool
	ConvertKVObjectToJSON bool
	QuoteUnquotedKeys     bool
	DropTrailingCommas    bool
	AllowSingleQuotes     bool
	DuplicateKeyPolicy    DuplicateKeyPolicy
}

// Metadata is the write-once record of which repairs actually applied during
// one parse.
type Metadata struct {
	ExtractedFromFence     bool
	FixedSmartQuotes       bool
	StrippedComments       bool
	ReplacedPythonLiterals bool
	ConvertedKVObject      bool
	QuotedUnquotedKeys     bool
	DroppedTrailingCommas  bool
	AllowedSingleQuotes    bool
	DuplicateKeyCount      int
	DuplicateKeyPolicy     DuplicateKeyPolicy
}
