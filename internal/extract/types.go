package extract

// SourceType classifies where in a file a URL was found.
type SourceType string

const (
	SourceString  SourceType = "string"
	SourceComment SourceType = "comment"
	SourceText    SourceType = "text"
)

// Match is one URL occurrence. Line and Column are 1-based, Start and
// End are 0-based byte offsets into the original file content, and
// End > Start always. Matches are immutable once produced.
type Match struct {
	URL     string     `json:"url"`
	Line    int        `json:"line"`
	Column  int        `json:"column"`
	Start   int        `json:"start"`
	End     int        `json:"end"`
	Context []string   `json:"context,omitempty"`
	Source  SourceType `json:"source"`
}

// Candidate is a contiguous source region selected for URL matching.
// Text holds the raw bytes verbatim (quoting intact) so match offsets
// map back exactly to file bytes via Start.
type Candidate struct {
	Start  int
	Source SourceType
	Text   string
}
