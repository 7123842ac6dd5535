package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a named member of an event. Identity is local to the
// event: the same person joining two events gets two rows.
type Participant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	EventID   string    `db:"event_id" json:"event_id"`
	Name      string    `db:"name" json:"name"`
	Email     *string   `db:"email" json:"email,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
