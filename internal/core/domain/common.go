package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	ModifiedBy string    `json:"modifiedBy"` // UserID reference
}

// Touch updates the modification audit fields.
func (a *AuditFields) Touch(now time.Time, actorID string) {
	a.ModifiedAt = now
	a.ModifiedBy = actorID
}
