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
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrCorruptState", ErrCorruptState, ErrCorruptState},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrCorruptState) {
		t.Error("ErrIllegalMove matches ErrCorruptState")
	}
	if errors.Is(ErrNoPiece, ErrIllegalMove) {
		t.Error("ErrNoPiece matches ErrIllegalMove")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading position: %w", ErrInvalidFEN)

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
				Err:      ErrIllegalMove,
				MoveText: "e2e5",
				Team:     "White",
				Reason:   "not a legal move",
				PlyNum:   3,
			},
			contains: []string{"ply 3", "White", "e2e5", "illegal move", "not a legal move"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrIllegalMove,
			},
			contains: []string{"illegal move"},
		},
		{
			name:     "no underlying error",
			err:      &MoveError{Reason: "wrong turn"},
			contains: []string{"move rejected", "wrong turn"},
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
		Err:      ErrIllegalMove,
		MoveText: "a1a1",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrIllegalMove) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrIllegalMove)
	}

	if !Is(moveErr, ErrIllegalMove) {
		t.Error("Is(moveErr, ErrIllegalMove) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		MoveText: "e7e5",
		Team:     "Black",
		Reason:   "it is White's turn",
	}

	wrapped := fmt.Errorf("replaying moves: %w", moveErr)

	var extractedErr *MoveError
	if !As(wrapped, &extractedErr) {
		t.Fatal("As() could not extract MoveError")
	}

	if extractedErr.MoveText != "e7e5" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "e7e5")
	}
	if extractedErr.Team != "Black" {
		t.Errorf("extractedErr.Team = %q, want %q", extractedErr.Team, "Black")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrCorruptState, "White king not indexed")

	if !errors.Is(wrapped, ErrCorruptState) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "White king not indexed") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrNoPiece, "square %s", "e4")

	if !errors.Is(wrapped, ErrNoPiece) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "square e4") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}

	if Wrapf(nil, "square %s", "e4") != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
