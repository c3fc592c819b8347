package rop

import (
	"errors"
	"fmt"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(3)
	if !r.IsSuccess() || r.IsFailure() || r.Result() != 3 || r.Err() != nil {
		t.Fatalf("unexpected success result: success=%v val=%v err=%v", r.IsSuccess(), r.Result(), r.Err())
	}
	if r.CreatedAt().IsZero() {
		t.Fatalf("expected creation time to be set")
	}
}

func TestFail(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	r := Fail[int](err)
	if r.IsSuccess() || !r.IsFailure() || !errors.Is(r.Err(), err) {
		t.Fatalf("unexpected failed result: success=%v err=%v", r.IsSuccess(), r.Err())
	}
	if r.Recovered() {
		t.Fatalf("plain error must not be reported as recovered panic")
	}
}

func TestPanicError(t *testing.T) {
	t.Parallel()

	cause := errors.New("inner")
	pe := NewPanicError(cause)
	wrapped := fmt.Errorf("item 4: %w", pe)

	if !IsPanic(wrapped) {
		t.Fatalf("expected wrapped panic error to match ErrPanic")
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected panic value error to be reachable")
	}
	var target *PanicError
	if !errors.As(wrapped, &target) || len(target.Stack) == 0 {
		t.Fatalf("expected *PanicError with stack")
	}
	if !Fail[int](pe).Recovered() {
		t.Fatalf("expected Recovered() for panic failure")
	}
	if NewPanicError("text").Unwrap() != nil {
		t.Fatalf("non-error panic value must not unwrap")
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	a, b := errors.New("a"), errors.New("b")

	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", got)
	}
	if got := GetErrors(a); len(got) != 1 || got[0] != a {
		t.Fatalf("expected [a], got %v", got)
	}
	if got := GetErrors(errors.Join(a, b)); len(got) != 2 {
		t.Fatalf("expected 2 errors, got %v", got)
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	var p *int
	var f func()
	if !IsNil(nil) || !IsNil(p) || !IsNil(f) {
		t.Fatalf("expected nil values to be nil")
	}
	if IsNil(0) || IsNil(errors.New("x")) {
		t.Fatalf("expected non-nil values to be non-nil")
	}
}
