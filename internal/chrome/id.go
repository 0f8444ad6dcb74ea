package chrome

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator mints node identifiers for one run. Every id it returns is
// strictly greater than the maximum id present in the source document, so
// synthesized nodes can never collide with preserved ones.
type IDGenerator struct {
	next int64
}

// NewIDGenerator seeds a generator past the document's current maximum id.
func NewIDGenerator(doc *Document) *IDGenerator {
	return &IDGenerator{next: doc.MaxID() + 1}
}

// Next returns the next identifier in the store's decimal string form.
func (g *IDGenerator) Next() string {
	id := g.next
	g.next++
	return strconv.FormatInt(id, 10)
}

// NewGUID mints a random unique identifier for a synthesized node.
func NewGUID() string {
	return uuid.NewString()
}
