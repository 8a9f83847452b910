package models

import (
	"time"
)

// AuditLog is one change of a point or a profile as stored in its audit subcollection.
// ExpiresAt drives the Firestore TTL policy and is never sent to clients.
type AuditLog struct {
	Entity         string     `json:"entity" firestore:"entity"`
	ChangedBy      string     `json:"changed_by" firestore:"changed_by"`
	ChangeType     string     `json:"change_type" firestore:"change_type"`
	ChangeDetails  []Diff     `json:"change_details" firestore:"change_details"`
	XCorrelationID string     `json:"x_correlation_id,omitempty" firestore:"x_correlation_id,omitempty"`
	ChangedAt      *time.Time `json:"changed_at" firestore:"changed_at"`
	ExpiresAt      *time.Time `json:"-" firestore:"expires_at"`
}

// Diff is a single changed field, OldValue is nil on create and NewValue is nil on delete
type Diff struct {
	Field    string      `json:"field" firestore:"field"`
	OldValue interface{} `json:"old_value" firestore:"old_value"`
	NewValue interface{} `json:"new_value" firestore:"new_value"`
}
