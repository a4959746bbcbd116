package cleanup

import (
	"errors"
	"testing"
)

func TestRunAll_LIFOAndErrors(t *testing.T) {
	var order []int
	boom := errors.New("close failed")
	Register(func() error { order = append(order, 1); return nil })
	Register(func() error { order = append(order, 2); return boom })
	Register(nil)
	Register(func() error { order = append(order, 3); return nil })

	err := RunAll()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped hook error, got %v", err)
	}
	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Fatalf("unexpected hook order: %v", order)
	}
	if err := RunAll(); err != nil {
		t.Fatalf("hooks should run once, got %v", err)
	}
}
