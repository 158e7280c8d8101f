package petri

import (
	"errors"
	"fmt"
)

var (
	ErrInhibitorPostcondition = errors.New("inhibitor arc in postconditions")
	ErrInvalidWeight          = errors.New("regular arc weight must be positive")
	ErrNotEnabled             = errors.New("transition is not enabled")
	ErrUnknownPlace           = errors.New("place not tracked in marking")
)

// ArcError is returned when a transition is built with an arc it cannot hold.
type ArcError struct {
	Transition string
	Place      any
	Arc        Arc
	Err        error
}

func (e *ArcError) Error() string {
	return fmt.Sprintf("transition %s: place %v: %s: %v", e.Transition, e.Place, e.Arc, e.Err)
}

func (e *ArcError) Unwrap() error { return e.Err }

// NotEnabledError reports an attempt to fire a transition whose preconditions do not
// hold. It is an expected outcome of driving a net, not a malfunction.
type NotEnabledError struct {
	Transition string
}

func (e *NotEnabledError) Error() string {
	return fmt.Sprintf("transition %s is not enabled", e.Transition)
}

func (e *NotEnabledError) Is(target error) bool { return target == ErrNotEnabled }

func NotEnabled(t string) error {
	return &NotEnabledError{Transition: t}
}

// UnknownPlaceError is returned by Fire when an arc writes to a place missing from the
// marking.
type UnknownPlaceError struct {
	Transition string
	Place      any
}

func (e *UnknownPlaceError) Error() string {
	return fmt.Sprintf("transition %s: place %v not tracked in marking", e.Transition, e.Place)
}

func (e *UnknownPlaceError) Is(target error) bool { return target == ErrUnknownPlace }
