package common

import (
	"time"
)

const EnvProjectID string = "PROJECT_ID"
const EnvOpencensusxProjectID string = "OPENCENSUSX_PROJECT_ID"
const EnvAuditLogTopic string = "AUDIT_LOG_TOPIC"
const EnvPointMessageTopic = "POINT_MESSAGE_TOPIC"
const EnvProfileMessageTopic = "PROFILE_MESSAGE_TOPIC"
const EnvPort = "PORT"

const ServiceName string = "pin-drop-svc"
const PointsCollection string = "points"
const PointAuditCollection string = "points-audit"
const ProfilesCollection string = "profiles"
const ProfileAuditCollection string = "profiles-audit"

const PointPath string = "/points/"
const ProfilePath string = "/profile"

const PathParamPointID string = "point_id"
const QueryParamLatitude string = "latitude"
const QueryParamLongitude string = "longitude"

const MaxRetryCount int = 3
const DataRetentionTime = time.Hour * 24 * 90 // 90 days
const APIVersionV1 string = "v1"

const HeaderAcceptVersion string = "Accept-Version"
const HeaderXCorrelationID string = "X-Correlation-ID"
const HeaderLastModified string = "Last-Modified"
const HeaderLocation string = "Location"
const HeaderEtag string = "ETag"
const HeaderUserEmail string = "X-User-Email"
const HeaderUserDisplayName string = "X-User-Display-Name"
const HeaderLocationPermission string = "X-Location-Permission"

const HeaderContentType string = "Content-Type"
const ContentTypeApplicationJSON string = "application/json"

const ID string = "id"
const Latitude string = "latitude"
const Longitude string = "longitude"
const Color string = "color"
const Description string = "description"
const Creator string = "creator"
const CreatorEmail string = "creatorEmail"
const Timestamp string = "timestamp"
const DisplayName string = "display_name"
const UpdatedTime string = "updated_time"

// TimestampFormat matches the ISO-8601 form written by the mobile client, always in UTC.
const TimestampFormat string = "2006-01-02T15:04:05.000Z"

const Firestore string = "firestore"

const EntityPoint string = "point"
const EntityProfile string = "profile"

const AuditTypeCreate string = "create"
const AuditTypeUpdate string = "update"
const AuditTypeDelete string = "delete"

const AnonymousUser string = "Anonymous"
const PermissionDenied string = "denied"

const RandomIDLength int = 5

const EarthRadiusKm float64 = 6371
const DefaultLatitudeDelta float64 = 0.0922
const DefaultLongitudeDelta float64 = 0.0421

const ColorRed string = "red"
const ColorBlue string = "blue"
const ColorGreen string = "green"
const ColorYellow string = "yellow"
const ColorPurple string = "purple"
const ColorOrange string = "orange"

const MyLocationColor = ColorBlue
const MyLocationDescription string = "Pinned at user's location"

const DirectionsAPIUrl = "https://maps.googleapis.com/maps/api/directions/json"
const GoogleMapsAPIEnv = "GOOGLE_MAPS_API_KEY"
const OriginParam = "origin"
const DestinationParam = "destination"
const APIKeyParam = "key"
const StatusOK = "OK"

const ChangeTypeCreate string = "create"
const ChangeTypeUpdate string = "update"
const ChangeTypeDelete string = "delete"

func GetMandatoryHeaders() []string {
	return []string{
		HeaderAcceptVersion, HeaderXCorrelationID,
	}
}

// GetIdentityHeaders returns the mandatory headers plus the requester identity
func GetIdentityHeaders() []string {
	return append(GetMandatoryHeaders(), HeaderUserEmail)
}

func GetSupportedVersions() []string {
	return []string{
		APIVersionV1,
	}
}

// GetPointColors returns the colors a point may be created with, the first one is the default
func GetPointColors() []string {
	return []string{
		ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorOrange,
	}
}
