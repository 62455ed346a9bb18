package llmparse

import "github.com/driftcode/llmparse/internal/repairparse"

// DuplicateKeyPolicy governs how the repairing parser handles an object
// literal that repeats a key.
type DuplicateKeyPolicy = repairparse.DuplicateKeyPolicy

const (
	FirstWins         = repairparse.FirstWins
	LastWins          = repairparse.LastWins
	ErrorOnDuplicate  = repairparse.ErrorOnDuplicate
)

// RepairConfig selects which textual pre-passes the repairing parser
// applies before strict parsing, and how duplicate object keys resolve.
type RepairConfig = repairparse.Config

// RepairMetadata is the write-once trace of which repairs actually fired
// during one parse.
type RepairMetadata = repairparse.Metadata
