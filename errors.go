// errors.go defines public error types for the gaussfix package.

package gaussfix

import (
	"errors"

	"github.com/SemyonDr/gaussfix/internal/tables"
)

// Public sentinel errors for table construction failures. Use errors.Is
// against these, or type-assert to *TableLoadFailure for the offending
// path.
var (
	// ErrTableNotFound indicates a required table file could not be opened.
	ErrTableNotFound = errors.New("gaussfix: table file not found")

	// ErrTableParse indicates a table file line could not be parsed as
	// the expected tuple shape.
	ErrTableParse = errors.New("gaussfix: table file parse error")

	// ErrTableCountMismatch indicates a table file parsed but did not
	// have the expected number of records for its segment/entry count.
	ErrTableCountMismatch = errors.New("gaussfix: table file record count mismatch")
)

// TableLoadFailure is the single failure kind table loading can produce:
// a construction-time error naming the offending file path and reason.
// Once Load returns an *Engine successfully, evaluation is total and this
// error never occurs again.
type TableLoadFailure struct {
	Path   string
	Reason TableLoadFailureReason
}

// TableLoadFailureReason classifies why table loading failed.
type TableLoadFailureReason int

const (
	// TableNotFound means the file could not be opened.
	TableNotFound TableLoadFailureReason = iota
	// TableParseError means a line could not be parsed as the expected tuple shape.
	TableParseError
	// TableCountMismatch means the file parsed but had the wrong record count.
	TableCountMismatch
)

func (e *TableLoadFailure) Error() string {
	return "gaussfix: " + e.Path + ": " + e.Reason.String()
}

func (e *TableLoadFailure) Unwrap() error {
	switch e.Reason {
	case TableNotFound:
		return ErrTableNotFound
	case TableParseError:
		return ErrTableParse
	case TableCountMismatch:
		return ErrTableCountMismatch
	default:
		return ErrTableParse
	}
}

func (r TableLoadFailureReason) String() string {
	switch r {
	case TableNotFound:
		return "not found"
	case TableParseError:
		return "parse error"
	case TableCountMismatch:
		return "count mismatch"
	default:
		return "unknown"
	}
}

// wrapTableLoadFailure translates the internal/tables package's failure
// type into the public TableLoadFailure, so internal/tables never needs
// to import the root package (which would cycle back into it).
func wrapTableLoadFailure(err error) error {
	if err == nil {
		return nil
	}
	lf, ok := err.(*tables.LoadFailure)
	if !ok {
		return err
	}
	reason := TableParseError
	switch lf.Reason {
	case tables.ReasonNotFound:
		reason = TableNotFound
	case tables.ReasonCountMismatch:
		reason = TableCountMismatch
	}
	return &TableLoadFailure{Path: lf.Path, Reason: reason}
}
