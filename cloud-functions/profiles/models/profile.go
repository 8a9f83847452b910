package models

import (
	"time"
)

//nolint:lll
type Profile struct {
	Email       string     `json:"email" firestore:"email" structs:"email"`
	DisplayName string     `json:"display_name" firestore:"display_name" structs:"display_name"`
	UpdatedTime *time.Time `json:"updated_time,omitempty" firestore:"updated_time" structs:"updated_time,omitnested"`
	ETag        string     `json:"etag,omitempty" firestore:"-" structs:"-"`
}

// ProfileRequest is the body accepted to change the display name.
// The name is trimmed before use so a blank name is rejected by the handler.
type ProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"required,max=128"`
}

type PubSubProfileMessage struct {
	ChangeType string `json:"change_type"`
	Email      string `json:"email"`
}

func GetPubSubProfileMessage(email string, changeType string) *PubSubProfileMessage {
	return &PubSubProfileMessage{
		ChangeType: changeType,
		Email:      email,
	}
}
