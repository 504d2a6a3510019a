package domain

import "time"

// DocStatus mirrors the ERP document lifecycle flag. The facade only reads it.
type DocStatus int

const (
	DocStatusDraft     DocStatus = 0
	DocStatusSubmitted DocStatus = 1
	DocStatusCancelled DocStatus = 2
)

// AuditFields holds standard audit information for records the facade creates.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
