package datastruct

import (
	"github.com/cockroachdb/redact"
	"github.com/dustin/go-humanize"
	"go.llib.dev/adt/pkg/elemtype"
)

// Summary is the one-line diagnostic description of a container,
// such as "ArrayStack - capacity: 1,024, size: 3, type: int64".
type Summary struct {
	Kind string
	// CapacityName labels Capacity, "capacity" when left empty.
	CapacityName string
	// Capacity is left out of the text when negative.
	Capacity int
	Size     int
	Type     elemtype.Type
}

var _ redact.SafeFormatter = Summary{}

func (s Summary) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s - ", redact.SafeString(s.Kind))
	if 0 <= s.Capacity {
		name := s.CapacityName
		if name == "" {
			name = "capacity"
		}
		w.Printf("%s: %s, ", redact.SafeString(name), redact.SafeString(humanize.Comma(int64(s.Capacity))))
	}
	w.Printf("size: %s, type: %s",
		redact.SafeString(humanize.Comma(int64(s.Size))),
		redact.SafeString(s.Type.String()))
}

func (s Summary) String() string {
	return redact.StringWithoutMarkers(s)
}
