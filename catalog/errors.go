package catalog

import "fmt"

// DataFormatError reports a catalog source that cannot be used at all,
// such as a missing required column. Individual bad rows are skipped and
// counted instead of raising this error.
type DataFormatError struct {
	Source string
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("catalog %s: %s", e.Source, e.Reason)
}
