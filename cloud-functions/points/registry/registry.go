package registry

import (
	"context"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/models"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/geo"
	"github.com/TakeoffTech/pin-drop-svc/common/identity"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"go.opencensus.io/trace"
	"sync"
	"time"
)

const (
	opLoad   = "load"
	opCreate = "create"
	opDelete = "delete"
)

// Registry is the set of points known to one map session.
// Remote calls are never made while holding the lock, so concurrent mutations race
// the same way independent clients do: a LoadAll racing a Delete may bring back the
// deleted point until the next LoadAll.
type Registry struct {
	mu     sync.RWMutex
	points []models.Point
	db     cloud.DB
	now    func() time.Time
}

// New returns a registry backed by db, seeded with points
func New(db cloud.DB, points ...models.Point) *Registry {
	return &Registry{
		points: append([]models.Point{}, points...),
		db:     db,
		now:    time.Now,
	}
}

// LoadAll replaces the local points with every point in the store.
// A store failure is logged and leaves the registry empty, it is never returned.
// Documents with a NaN or infinite coordinate are skipped since they cannot be rendered.
func (r *Registry) LoadAll(ctx context.Context) []models.Point {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("registry.LoadAll"))
	defer span.End()
	logger := logging.GetLoggerFromContext(ctx)

	loaded := make([]models.Point, 0)
	documents, err := r.db.GetAll(ctx, common.PointsCollection, nil)
	if err != nil {
		logger.Errorf("Error while loading points : %v", &OperationError{Op: opLoad, Err: err})
	} else {
		for _, document := range documents {
			point := models.PointFromDocument(document)
			if missing := models.MissingCoordinateFields(document); len(missing) > 0 {
				logger.Warnf("Point %s has no numeric %v, it is placed at 0", point.ID, missing)
			}
			if !point.Coordinate().IsFinite() {
				logger.Warnf("Point %s skipped, its coordinate %v is not finite", point.ID, point.Coordinate())

				continue
			}
			loaded = append(loaded, point)
		}
	}

	r.mu.Lock()
	r.points = loaded
	r.mu.Unlock()
	logger.Debugf("%d points loaded", len(loaded))

	return r.Pins()
}

// Create stores a new point attributed to user and appends it under the id the store assigned.
// On failure the local points are left as they were.
func (r *Registry) Create(ctx context.Context, user identity.User, fields models.PointFields) (models.Point, error) {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("registry.Create"))
	defer span.End()

	point := models.Point{
		Latitude:     fields.Coordinate.Latitude,
		Longitude:    fields.Coordinate.Longitude,
		Color:        fields.Color,
		Description:  fields.Description,
		Creator:      user.Name(),
		CreatorEmail: user.Email,
		Timestamp:    r.now().UTC().Format(common.TimestampFormat),
	}
	pointID, _, err := r.db.Add(ctx, common.PointsCollection, point)
	if err != nil {
		return models.Point{}, &OperationError{Op: opCreate, Err: err}
	}
	point.ID = pointID

	r.mu.Lock()
	r.points = append(r.points, point)
	r.mu.Unlock()
	logging.GetLoggerFromContext(ctx).Debugf("Point %s created by %s", point.ID, point.Creator)

	return point, nil
}

// Delete removes the point from the store and then from the registry.
// Only the creator of the point may delete it, an empty requesterEmail never matches.
func (r *Registry) Delete(ctx context.Context, pointID string, requesterEmail string) error {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("registry.Delete"))
	defer span.End()

	point, ok := r.Get(pointID)
	if !ok {
		return ErrPointNotFound
	}
	if !(identity.User{Email: requesterEmail}).Owns(point.CreatorEmail) {
		return ErrOwnershipViolation
	}

	if _, err := r.db.Delete(ctx, common.PointsCollection, pointID); err != nil {
		return &OperationError{Op: opDelete, PointID: pointID, Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.points {
		if r.points[i].ID == pointID {
			r.points = append(r.points[:i:i], r.points[i+1:]...)

			break
		}
	}

	return nil
}

// Pins returns a copy of the points in registry order
func (r *Registry) Pins() []models.Point {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]models.Point, 0, len(r.points)), r.points...)
}

// Get returns the point with the id pointID
func (r *Registry) Get(pointID string) (models.Point, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, point := range r.points {
		if point.ID == pointID {
			return point, true
		}
	}

	return models.Point{}, false
}

// Nearby returns every point with its distance from origin, in registry order
func (r *Registry) Nearby(origin geo.Coordinate) []models.NearbyPoint {
	pins := r.Pins()
	nearby := make([]models.NearbyPoint, 0, len(pins))
	for _, point := range pins {
		nearby = append(nearby, models.NearbyPoint{Point: point, DistanceKm: DistanceTo(origin, point)})
	}

	return nearby
}

// DistanceTo is the great-circle distance in kilometers from origin to the point
func DistanceTo(origin geo.Coordinate, point models.Point) float64 {
	return geo.Distance(origin, point.Coordinate())
}
