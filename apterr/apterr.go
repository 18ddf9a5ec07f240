// Package apterr defines the error taxonomy shared by the generator
// and the simulator. GenOpts validation and the simulator's operations
// report their failures as one of these kinds, and callers match them
// with errors.Is against the sentinels below.
package apterr

import "errors"

// Kind identifies which invariant an operation violated.
type Kind string

const (
	KindConfigError          Kind = "config_error"
	KindInvalidStart         Kind = "invalid_start"
	KindOutOfBounds          Kind = "out_of_bounds"
	KindHitObstacle          Kind = "hit_obstacle"
	KindNotInteractable      Kind = "not_interactable"
	KindNothingToPickUp      Kind = "nothing_to_pick_up"
	KindNothingToInteract    Kind = "nothing_to_interact"
	KindAlreadyHolding       Kind = "already_holding"
	KindNotHolding           Kind = "not_holding"
	KindContainerFull        Kind = "container_full"
	KindInvalidTarget        Kind = "invalid_target"
)

// Error pairs a Kind with a human-readable message. It implements the
// standard error interface and supports errors.Is against the
// sentinel values below (equality is by Kind, not by message).
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, ErrHitObstacle) works regardless of message text.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

func newErr(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

// Sentinels for errors.Is comparisons. Their Msg fields are generic;
// call sites that want a specific message construct their own *Error
// with the matching Kind instead of returning these directly.
var (
	ErrConfigError       = newErr(KindConfigError, "config error")
	ErrInvalidStart      = newErr(KindInvalidStart, "invalid start position")
	ErrOutOfBounds       = newErr(KindOutOfBounds, "out of bounds")
	ErrHitObstacle       = newErr(KindHitObstacle, "hit obstacle")
	ErrNotInteractable   = newErr(KindNotInteractable, "not interactable")
	ErrNothingToPickUp   = newErr(KindNothingToPickUp, "nothing to pick up")
	ErrNothingToInteract = newErr(KindNothingToInteract, "nothing to interact with")
	ErrAlreadyHolding    = newErr(KindAlreadyHolding, "already holding an object")
	ErrNotHolding        = newErr(KindNotHolding, "not holding an object")
	ErrContainerFull     = newErr(KindContainerFull, "container is full")
	ErrInvalidTarget     = newErr(KindInvalidTarget, "invalid target")
)

// New constructs an error of the given kind with a specific message,
// still matched by errors.Is against the corresponding sentinel.
func New(kind Kind, msg string) error { return newErr(kind, msg) }
