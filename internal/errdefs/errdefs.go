// Package errdefs defines the error kinds surfaced by habitctl and their
// process exit codes.
package errdefs

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindNotFound
	KindAmbiguous
	KindStorageCorrupt
	KindStorageUnavailable
)

// Candidate identifies one habit matched by an ambiguous selector.
type Candidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Error is a domain error with a kind and, for ambiguous selectors, the
// matching candidates.
type Error struct {
	Kind       Kind
	Message    string
	Candidates []Candidate
}

func (e *Error) Error() string {
	if e.Kind == KindAmbiguous && len(e.Candidates) > 0 {
		parts := make([]string, len(e.Candidates))
		for i, c := range e.Candidates {
			parts[i] = c.ID + " " + c.Name
		}
		return e.Message + ": " + strings.Join(parts, ", ")
	}
	return e.Message
}

func InvalidInput(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Ambiguous(message string, candidates []Candidate) error {
	return &Error{Kind: KindAmbiguous, Message: message, Candidates: candidates}
}

func StorageCorrupt(format string, args ...any) error {
	return &Error{Kind: KindStorageCorrupt, Message: fmt.Sprintf(format, args...)}
}

func StorageUnavailable(format string, args ...any) error {
	return &Error{Kind: KindStorageUnavailable, Message: fmt.Sprintf(format, args...)}
}

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsInvalidInput(err error) bool { return kindOf(err) == KindInvalidInput }
func IsNotFound(err error) bool     { return kindOf(err) == KindNotFound }
func IsAmbiguous(err error) bool    { return kindOf(err) == KindAmbiguous }

// IsStorage reports whether err is either storage error kind.
func IsStorage(err error) bool {
	k := kindOf(err)
	return k == KindStorageCorrupt || k == KindStorageUnavailable
}

// CandidatesOf returns the candidate list carried by an ambiguous error.
func CandidatesOf(err error) []Candidate {
	var e *Error
	if errors.As(err, &e) {
		return e.Candidates
	}
	return nil
}

// ExitCode maps an error to the habitctl process exit code.
func ExitCode(err error) int {
	switch kindOf(err) {
	case KindInvalidInput:
		return 2
	case KindNotFound:
		return 3
	case KindAmbiguous:
		return 4
	case KindStorageCorrupt, KindStorageUnavailable:
		return 5
	default:
		return 1
	}
}
