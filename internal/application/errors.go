package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrInvalidPlan = errors.New("invalid move plan")
	ErrMoveFailed  = errors.New("move failed")
)

// PlanError reports an invalid entry in a move plan
type PlanError struct {
	Origin      string
	Destination string
	Reason      string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %s", e.Origin, e.Destination, e.Reason)
}

func (e *PlanError) Is(target error) bool {
	return target == ErrInvalidPlan
}

// MoveError reports a failed history-preserving move
type MoveError struct {
	Origin      string
	Destination string
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("failed to move %s to %s: %v", e.Origin, e.Destination, e.Err)
}

func (e *MoveError) Is(target error) bool {
	return target == ErrMoveFailed
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
