package profiles

import (
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
)

const (
	auditTopic   = "audit-topic"
	profileTopic = "profile-topic"
	janeEmail    = "jane@example.com"
)

func init() {
	err := os.Setenv(common.EnvProjectID, "project-id")
	if err != nil {
		return
	}
	_ = os.Setenv(common.EnvAuditLogTopic, auditTopic)
	_ = os.Setenv(common.EnvProfileMessageTopic, profileTopic)
}

func getRequest(method string, url string, body string, headers ...string) *http.Request {
	request := httptest.NewRequest(method, url, strings.NewReader(body))
	for _, header := range headers {
		switch header {
		case common.HeaderAcceptVersion:
			request.Header.Set(header, common.APIVersionV1)
		case common.HeaderUserEmail:
			request.Header.Set(header, janeEmail)
		case common.HeaderUserDisplayName:
			request.Header.Set(header, "Jane")
		default:
			request.Header.Set(header, utils.GetRandomID(common.RandomIDLength))
		}
	}

	return request
}
