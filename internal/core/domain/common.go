package domain

import "time"

// AuditFields holds the standard timestamps carried by every persisted entity.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
