package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

var errRoomCodeExhausted = errors.New("could not allocate a unique room code")

type errorKind int

const (
	errKindValidation errorKind = iota + 1
	errKindNotFound
	errKindInvalidState
	errKindCapacity
	errKindInsufficientPlayers
	errKindNoPrompts
	errKindAlreadySubmitted
	errKindPersistence
)

// gameError carries the failure taxonomy the handlers map to HTTP statuses.
// Messages are surfaced verbatim to callers, so persistence failures get a
// generic message and the underlying error is only logged.
type gameError struct {
	kind    errorKind
	message string
}

func (e *gameError) Error() string {
	return e.message
}

func newValidationError(format string, args ...any) error {
	return &gameError{kind: errKindValidation, message: fmt.Sprintf(format, args...)}
}

func newNotFoundError(message string) error {
	return &gameError{kind: errKindNotFound, message: message}
}

func newInvalidStateError(message string) error {
	return &gameError{kind: errKindInvalidState, message: message}
}

func newCapacityError(message string) error {
	return &gameError{kind: errKindCapacity, message: message}
}

func newInsufficientPlayersError(message string) error {
	return &gameError{kind: errKindInsufficientPlayers, message: message}
}

func newNoPromptsError(message string) error {
	return &gameError{kind: errKindNoPrompts, message: message}
}

func newAlreadySubmittedError(message string) error {
	return &gameError{kind: errKindAlreadySubmitted, message: message}
}

func persistenceError(op string, err error) error {
	log.Printf("store failure op=%s error=%v", op, err)
	return &gameError{kind: errKindPersistence, message: "failed to " + op}
}

func kindOf(err error) errorKind {
	var ge *gameError
	if errors.As(err, &ge) {
		return ge.kind
	}
	return 0
}

func httpStatus(err error) int {
	switch kindOf(err) {
	case errKindValidation, errKindInvalidState, errKindCapacity,
		errKindInsufficientPlayers, errKindNoPrompts, errKindAlreadySubmitted:
		return http.StatusBadRequest
	case errKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
