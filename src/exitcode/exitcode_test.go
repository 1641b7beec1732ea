package exitcode

import (
	"errors"
	"fmt"
	"testing"
)

type coded struct{ code int }

func (c *coded) Error() string { return fmt.Sprintf("coded(%d)", c.code) }
func (c *coded) ExitCode() int { return c.code }

func TestOfNilIsZero(t *testing.T) {
	if got := Of(nil); got != 0 {
		t.Errorf("Of(nil) = %d, want 0", got)
	}
}

func TestOfCoderReturnsItsCode(t *testing.T) {
	if got := Of(&coded{code: 42}); got != 42 {
		t.Errorf("Of(coded{42}) = %d, want 42", got)
	}
}

func TestOfCoderFoundThroughWrapping(t *testing.T) {
	err := fmt.Errorf("context: %w", &coded{code: 7})
	if got := Of(err); got != 7 {
		t.Errorf("Of(wrapped coded{7}) = %d, want 7", got)
	}
}

func TestOfPlainErrorFallsBackToOne(t *testing.T) {
	if got := Of(errors.New("boom")); got != 1 {
		t.Errorf("Of(plain error) = %d, want 1", got)
	}
}
