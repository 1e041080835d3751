package scanner

import (
	"errors"
	"fmt"

	"github.com/urlscout/urlscout-go/internal/extract"
)

// ErrUndecodable marks files whose content is binary or otherwise not
// scannable text.
var ErrUndecodable = errors.New("binary or undecodable content")

// Stage identifies where in the per-file pipeline a failure occurred.
type Stage string

const (
	StageRead    Stage = "read"
	StageParse   Stage = "parse"
	StageExtract Stage = "extract"
)

// FileError is a per-file scan failure. Under the default policy it is
// recorded and scanning continues; under fail-fast the first one aborts
// the batch.
type FileError struct {
	Path   string `json:"path"`
	Stage  Stage  `json:"stage"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

func newFileError(path string, stage Stage, err error) *FileError {
	return &FileError{Path: path, Stage: stage, Reason: err.Error(), Err: err}
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// FileResult holds the matches found in one file, in document order.
type FileResult struct {
	Path    string          `json:"path"`
	Matches []extract.Match `json:"matches"`
}

// Outcome is the aggregate result of a scan. Files follows the
// caller-supplied enumeration order regardless of completion order.
// UniqueURLs is the cardinality of the case-sensitive exact-string set.
type Outcome struct {
	Files        []FileResult `json:"files"`
	Failures     []FileError  `json:"failures,omitempty"`
	FilesScanned int          `json:"files_scanned"`
	TotalURLs    int          `json:"total_urls"`
	UniqueURLs   int          `json:"unique_urls"`
}
