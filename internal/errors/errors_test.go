package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidPGN", ErrInvalidPGN, ErrInvalidPGN},
		{"ErrMissingPiece", ErrMissingPiece, ErrMissingPiece},
		{"ErrOccupiedDestination", ErrOccupiedDestination, ErrOccupiedDestination},
		{"ErrNoCaptureTarget", ErrNoCaptureTarget, ErrNoCaptureTarget},
		{"ErrNoLegalOrigin", ErrNoLegalOrigin, ErrNoLegalOrigin},
		{"ErrAmbiguousOrigin", ErrAmbiguousOrigin, ErrAmbiguousOrigin},
		{"ErrTooManyOrigins", ErrTooManyOrigins, ErrTooManyOrigins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrNoCaptureTarget,
				Ply:      12,
				MoveText: "Nxe5",
			},
			contains: []string{"ply 12", "Nxe5", "nothing to capture"},
		},
		{
			name: "no move text",
			err: &MoveError{
				Err: ErrNoLegalOrigin,
				Ply: 1,
			},
			contains: []string{"ply 1", "no piece can reach"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrAmbiguousOrigin,
		Ply:      7,
		MoveText: "Nd7",
	}

	// Unwrap should return the underlying error
	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrAmbiguousOrigin) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrAmbiguousOrigin)
	}

	// errors.Is should work through the wrapper
	if !errors.Is(moveErr, ErrAmbiguousOrigin) {
		t.Error("errors.Is(moveErr, ErrAmbiguousOrigin) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrMissingPiece,
		Ply:      24,
		MoveText: "O-O-O",
	}

	// Wrap it further
	wrapped := fmt.Errorf("replay failed: %w", moveErr)

	// Should be able to extract MoveError with errors.As
	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.Ply != 24 {
		t.Errorf("extractedErr.Ply = %d, want 24", extractedErr.Ply)
	}
	if extractedErr.MoveText != "O-O-O" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "O-O-O")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidPGN,
		Line:     100,
		Expected: "move number",
		Got:      "comment",
	}

	msg := err.Error()

	if !containsIgnoreCase(msg, "line 100") {
		t.Errorf("ParseError.Error() should contain line number, got %q", msg)
	}
	if !containsIgnoreCase(msg, "expected move number") {
		t.Errorf("ParseError.Error() should contain expectation, got %q", msg)
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:  ErrInvalidFEN,
		Line: 1,
	}

	if !errors.Is(parseErr, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	original := ErrInvalidFEN
	wrapped := Wrap(original, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	original := ErrNoLegalOrigin
	wrapped := Wrapf(original, "ply %d of %d", 15, 64)

	if !errors.Is(wrapped, ErrNoLegalOrigin) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
