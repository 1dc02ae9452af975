package zipdiff

import (
	"time"

	"github.com/Srijan619/ziffy/util"
)

// Status is the classification of one entry name across two archives.
type Status string

const (
	StatusAdded          Status = "Added"
	StatusRemoved        Status = "Removed"
	StatusModified       Status = "Modified"
	StatusModifiedImage  Status = "Modified (Image)"
	StatusModifiedBinary Status = "Modified (Binary)"
	StatusUnknown        Status = "Unknown"
)

// FileDifference describes one entry that is not identical in both archives.
//
// ContentDiff is nil for every status except StatusModified, for which it is
// always non-nil; a modified text entry whose lines all align still carries
// an empty, non-nil slice.
type FileDifference struct {
	Filename    string   `json:"filename"`
	Status      Status   `json:"status"`
	ContentDiff []string `json:"content_diff"`
}

// Report is the full outcome of one comparison.
type Report struct {
	// ID identifies the comparison in log output.
	ID string
	// Differences is unordered.
	Differences []FileDifference
	// Errors holds the per-entry failures that caused entries to be left out
	// of Differences. It never contains fatal errors.
	Errors []error
	// Identical is set when the short-circuit on the container digests fired.
	Identical bool
	Duration  time.Duration
}

// Tagged errors re-exported from util.
type (
	OpenError        = util.OpenError
	CatalogReadError = util.CatalogReadError
	ExtractionError  = util.ExtractionError
)

// Sentinel errors re-exported from util.
var (
	// ErrEntryNotFound is wrapped by an ExtractionError when an entry listed
	// in a catalog cannot be found again at diff time.
	ErrEntryNotFound = util.ErrEntryNotFound

	// ErrInvalidUTF8 is wrapped by an ExtractionError when a non-binary entry
	// is not valid UTF-8 text.
	ErrInvalidUTF8 = util.ErrInvalidUTF8
)
