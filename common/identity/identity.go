package identity

import (
	"github.com/TakeoffTech/pin-drop-svc/common"
	"net/http"
	"strings"
)

// User is the requester as verified by the identity provider in front of the functions.
// It is passed explicitly into every operation that attributes or authorizes a change.
type User struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// FromRequest reads the identity forwarded by the identity provider
func FromRequest(request *http.Request) User {
	return User{
		Email:       strings.TrimSpace(request.Header.Get(common.HeaderUserEmail)),
		DisplayName: strings.TrimSpace(request.Header.Get(common.HeaderUserDisplayName)),
	}
}

// Name is the display name to attribute a change to
func (u User) Name() string {
	if u.DisplayName == "" {
		return common.AnonymousUser
	}

	return u.DisplayName
}

// IsAnonymous is true when the request carries no email
func (u User) IsAnonymous() bool {
	return u.Email == ""
}

// Owns reports whether the user is the creator identified by creatorEmail
func (u User) Owns(creatorEmail string) bool {
	return !u.IsAnonymous() && u.Email == creatorEmail
}
