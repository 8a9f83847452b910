package audit

import (
	"fmt"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/audit/models"
	"time"
)

// PubSubAuditMessage is the structure of message that would be pushed to the pubsub topic
type PubSubAuditMessage struct {
	Path           string                 `json:"path"`
	ChangedBy      string                 `json:"changed_by"`
	EntityChanged  string                 `json:"entity_changed"`
	ChangeType     string                 `json:"change_type"`
	XCorrelationID string                 `json:"x_correlation_id"`
	OldEntity      map[string]interface{} `json:"old_entity"`
	NewEntity      map[string]interface{} `json:"new_entity"`
	ChangedAt      *time.Time             `json:"changed_at"`
	ExpiresAt      *time.Time             `json:"expires_at"`
}

func GetPubSubAuditMessage(path, xCorrelationID, changedBy,
	changeType, entityChanged string, changedAt *time.Time,
	oldEntity map[string]interface{}, newEntity map[string]interface{}) *PubSubAuditMessage {
	expiresAt := changedAt.Add(common.DataRetentionTime)

	return &PubSubAuditMessage{
		Path:           path,
		ChangedBy:      changedBy,
		EntityChanged:  entityChanged,
		ChangeType:     changeType,
		ChangedAt:      changedAt,
		XCorrelationID: xCorrelationID,
		OldEntity:      oldEntity,
		NewEntity:      newEntity,
		ExpiresAt:      &expiresAt,
	}
}

// NewAuditLog builds the audit document for msg out of the computed field diffs
func NewAuditLog(msg *PubSubAuditMessage, changeDetails []models.Diff) *models.AuditLog {
	return &models.AuditLog{
		Entity:         msg.EntityChanged,
		ChangedBy:      msg.ChangedBy,
		ChangeType:     msg.ChangeType,
		ChangeDetails:  changeDetails,
		XCorrelationID: msg.XCorrelationID,
		ChangedAt:      msg.ChangedAt,
		ExpiresAt:      msg.ExpiresAt,
	}
}

// GetPointAuditPath will return the firestore path at which the audit for the pointID should be stored
func GetPointAuditPath(pointID string) string {
	return fmt.Sprintf("%s/%s/%s",
		common.PointsCollection,
		pointID,
		common.PointAuditCollection)
}

// GetProfileAuditPath will return the firestore path at which the audit of the profile of email should be stored
func GetProfileAuditPath(email string) string {
	return fmt.Sprintf("%s/%s/%s",
		common.ProfilesCollection,
		email,
		common.ProfileAuditCollection)
}
