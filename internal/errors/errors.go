// Package errors provides sentinel errors and error types for the chess game.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules. It is the
	// only condition the rules engine reports for a rejected move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was submitted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSquare indicates square coordinates that cannot be parsed.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with the context of a submitted move: the side
// that tried to move and the two squares in algebraic form.
type MoveError struct {
	Err    error  // The underlying error
	Colour string // Side that submitted the move (if known)
	From   string // Origin square, e.g. "e2"
	To     string // Destination square, e.g. "e4"
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents an input parsing error with the offending text.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text that failed to parse
	Expected string // What was expected
}

// Error returns a formatted error message with the input and expectation.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
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
