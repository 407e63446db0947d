package domain

import "time"

// AuditFields holds bookkeeping timestamps. They never take part in windowing.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
