package storage

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and timestamps shared by stored records.
type BaseEntity struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBaseEntity stamps UpdatedAt with the current time. Times are kept in UTC
// so stored records compare the same regardless of the host zone.
func NewBaseEntity(id uuid.UUID, createdAt time.Time) BaseEntity {
	return BaseEntity{
		ID:        id,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}
