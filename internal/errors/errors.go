// Package errors provides sentinel errors and error types for the replay
// library. It defines the two failure families (malformed input and
// inconsistent board/move requests) as structured types that preserve
// context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Format errors: the input text fails the overall grammar. The caller
// receives no partially decoded value.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPGN indicates malformed PGN text.
	ErrInvalidPGN = errors.New("invalid PGN text")
)

// State violations: the board and the requested move disagree. Each aborts
// the current operation entirely; nothing retries or substitutes a default.
var (
	// ErrMissingPiece indicates a move requested from an empty square.
	ErrMissingPiece = errors.New("no piece on square")

	// ErrOccupiedDestination indicates a non-capture move targeting an
	// occupied square.
	ErrOccupiedDestination = errors.New("destination square occupied")

	// ErrNoCaptureTarget indicates a capture move whose destination is not
	// actually capturable, including a failed en-passant check.
	ErrNoCaptureTarget = errors.New("nothing to capture")

	// ErrNoLegalOrigin indicates no matching piece can reach the destination.
	ErrNoLegalOrigin = errors.New("no piece can reach destination")

	// ErrAmbiguousOrigin indicates the disambiguation hint was missing or
	// insufficient to choose between two candidate origins.
	ErrAmbiguousOrigin = errors.New("ambiguous origin")

	// ErrTooManyOrigins indicates more than two candidate origins, which the
	// engine treats as a corrupt-board invariant breach.
	ErrTooManyOrigins = errors.New("more than two candidate origins")
)

// MoveError wraps a state violation with replay context: the ply at which
// it occurred and the SAN text of the offending move. It supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number where the error occurred
	MoveText string // SAN text of the move that failed
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a format error with input location context.
// It is used for FEN and PGN parsing failures.
type ParseError struct {
	Err      error  // The underlying error
	Line     int    // Line number (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
