package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrOwnershipViolation is returned when a pin is deleted by someone other than its creator.
	// No remote call is made in that case.
	ErrOwnershipViolation = errors.New("requester is not the creator of the point")
	// ErrPointNotFound is returned when the point is not part of the registry
	ErrPointNotFound = errors.New("point not found")
	// ErrRemoteOperationFailed is matched by every *OperationError
	ErrRemoteOperationFailed = errors.New("remote operation failed")
)

// OperationError carries the store error that made a load, create or delete fail
type OperationError struct {
	Op      string
	PointID string
	Err     error
}

func (e *OperationError) Error() string {
	if e.PointID == "" {
		return fmt.Sprintf("%s points : %v : %v", e.Op, ErrRemoteOperationFailed, e.Err)
	}

	return fmt.Sprintf("%s point %s : %v : %v", e.Op, e.PointID, ErrRemoteOperationFailed, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func (e *OperationError) Is(target error) bool {
	return target == ErrRemoteOperationFailed
}
