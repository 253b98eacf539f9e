package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage and moveLess helpers which are internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, Sq("e2"), chess.NewSquare(2, 5))
	AssertEqual(t, nil, nil)
}

func TestAssertEqual_WithMessage(t *testing.T) {
	AssertEqual(t, "hello", "hello", "custom message")
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertSameMoves_Success(t *testing.T) {
	AssertSameMoves(t, Mvs("e2e4", "e2e3"), Mvs("e2e3", "e2e4"))
	AssertSameMoves(t, nil, []chess.Move{})
	AssertSameMoves(t, Mvs("a7a8q", "a7a8n"), Mvs("a7a8n", "a7a8q"), "promotions")
}

func TestAssertBoardEqual_Success(t *testing.T) {
	AssertBoardEqual(t, chess.NewInitialBoard(), MustBoard(t, chess.InitialPlacement))
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, base, base)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base, "wrapped error")
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "should be false")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single non-string", []interface{}{42}, "42"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string format", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestMoveLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"a2a3", "b2b3", true},
		{"b2b3", "a2a3", false},
		{"e2e3", "e2e4", true},
		{"a7a8q", "a7a8r", true},
		{"a7a8r", "a7a8q", false},
		{"e2e4", "e2e4", false},
	}
	for _, tt := range tests {
		if got := moveLess(Mv(tt.a), Mv(tt.b)); got != tt.want {
			t.Errorf("moveLess(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBuilders(t *testing.T) {
	b := BoardWith(map[string]chess.Piece{"e1": chess.W(chess.King), "e8": chess.B(chess.King)})
	AssertEqual(t, b.Get(Sq("e1")), chess.W(chess.King))
	AssertEqual(t, b.Get(Sq("e8")), chess.B(chess.King))
	AssertEqual(t, b.Count(), 2)

	AssertEqual(t, Mv("e7e8q"), chess.NewPromotion(Sq("e7"), Sq("e8"), chess.Queen))
}
