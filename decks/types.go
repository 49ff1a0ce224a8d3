package decks

import (
	"time"

	"github.com/google/uuid"
)

// Deck is the metadata record for a presentation. Slide content lives in a
// separate store entry keyed by Slug; the two are associated by the service
// layer, never by the storage layer itself.
type Deck struct {
	ID          uuid.UUID  `json:"id,omitempty"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`

	// Builtin marks code-defined example decks. They are immutable and are
	// never written to storage.
	Builtin bool `json:"-"`
}

// Clone returns a deep copy of the deck record.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	cloned := *d
	if d.UpdatedAt != nil {
		updated := *d.UpdatedAt
		cloned.UpdatedAt = &updated
	}
	return &cloned
}
