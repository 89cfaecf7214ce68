package functab

import (
	"errors"
	"reflect"
	"testing"
)

func inc(args ...any) (any, error) {
	return args[0].(int) + 1, nil
}

// ---------------------------------------------------------------------------
// Registration tests
// ---------------------------------------------------------------------------

func TestRegisterAndResolve(t *testing.T) {
	table := NewTable()

	if err := table.Register("inc", inc); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	h, err := table.Resolve("inc")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if h == nil {
		t.Fatal("Resolve returned nil handler")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	table := NewTable()

	if err := table.Register("inc", inc); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	err := table.Register("inc", func(args ...any) (any, error) {
		return nil, nil
	})
	if !errors.Is(err, ErrDuplicateFunc) {
		t.Errorf("duplicate Register = %v, want ErrDuplicateFunc", err)
	}

	// The original entry survives.
	result, err := table.Invoke("inc", 5)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if result != 6 {
		t.Errorf("Invoke = %v, want 6", result)
	}
}

func TestRegisterNilHandlerPanics(t *testing.T) {
	table := NewTable()

	defer func() {
		if recover() == nil {
			t.Error("Register with nil handler should panic")
		}
	}()
	table.Register("broken", nil)
}

// ---------------------------------------------------------------------------
// Invocation tests
// ---------------------------------------------------------------------------

func TestInvoke(t *testing.T) {
	table := NewTable()
	if err := table.Register("inc", inc); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := table.Invoke("inc", 5)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if result != 6 {
		t.Errorf("Invoke(inc, 5) = %v, want 6", result)
	}
}

func TestInvokeUnknown(t *testing.T) {
	table := NewTable()
	if err := table.Register("inc", inc); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := table.Invoke("dec", 5); !errors.Is(err, ErrUnknownFunc) {
		t.Errorf("Invoke(dec) = %v, want ErrUnknownFunc", err)
	}
	if _, err := table.Resolve("dec"); !errors.Is(err, ErrUnknownFunc) {
		t.Errorf("Resolve(dec) = %v, want ErrUnknownFunc", err)
	}
}

func TestInvokePropagatesHandlerError(t *testing.T) {
	handlerErr := errors.New("handler blew up")
	table := NewTable()
	if err := table.Register("boom", func(args ...any) (any, error) {
		return nil, handlerErr
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := table.Invoke("boom")
	if err != handlerErr {
		t.Errorf("Invoke should return the handler's error unchanged, got %v", err)
	}
}

func TestInvokePassesArgs(t *testing.T) {
	table := NewTable()
	if err := table.Register("sum", func(args ...any) (any, error) {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total, nil
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := table.Invoke("sum", 1, 2, 3)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if result != 6 {
		t.Errorf("Invoke(sum, 1, 2, 3) = %v, want 6", result)
	}
}

// ---------------------------------------------------------------------------
// Introspection tests
// ---------------------------------------------------------------------------

func TestNamesSorted(t *testing.T) {
	table := NewTable()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		if err := table.Register(id, inc); err != nil {
			t.Fatalf("Register %q failed: %v", id, err)
		}
	}

	want := []string{"alpha", "mid", "zeta"}
	if got := table.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
	if table.Count() != 3 {
		t.Errorf("Count = %d, want 3", table.Count())
	}
}
