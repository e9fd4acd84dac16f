package gate

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dgnsrekt/guardrail/kind"
)

// Entry is one accepted write in a Gate's audit trail.
type Entry struct {
	// ID uniquely identifies the entry.
	ID string

	// Field is the name the value was accepted under.
	Field string

	// Value is the accepted value.
	Value kind.Value

	// At is when the write was accepted.
	At time.Time
}

// String renders the entry with a relative timestamp.
func (e Entry) String() string {
	return fmt.Sprintf("%s %s=%s (%s)", e.ID, e.Field, e.Value, humanize.Time(e.At))
}

// Trail is an ordered view of audit entries, oldest first.
type Trail []Entry

// String renders the trail one entry per line.
func (tr Trail) String() string {
	lines := make([]string, len(tr))
	for i, e := range tr {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
