package participant

import (
	"strings"

	"github.com/google/uuid"
)

// Participant is a registered board member. Immutable after registration:
// re-registration is not supported, so there are no mutators here.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Dept string `json:"dept,omitempty"`
}

// New creates a participant with a fresh id. Name and dept are trimmed;
// an empty dept is kept out of the serialized form entirely.
func New(name, role, dept string) *Participant {
	return &Participant{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(name),
		Role: role,
		Dept: strings.TrimSpace(dept),
	}
}

// Valid reports whether the record satisfies the roster shape check:
// a non-empty string id.
func (p *Participant) Valid() bool {
	return p != nil && p.ID != ""
}
