package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/bgqueue/pkg/rop"
)

func TestGuard_Success(t *testing.T) {
	t.Parallel()
	out := Guard(4, func(x int) int { return x * x })
	if !out.IsSuccess() || out.Result() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestGuard_RecoversPanic(t *testing.T) {
	t.Parallel()
	out := Guard(0, func(x int) int { return 10 / x })
	if out.IsSuccess() || !out.Recovered() {
		t.Fatalf("expected recovered failure, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if !errors.Is(out.Err(), rop.ErrPanic) {
		t.Fatalf("expected ErrPanic, got %v", out.Err())
	}
}

func TestGuardTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	out := GuardTry("x", strconv.Atoi)
	if out.IsSuccess() || out.Recovered() {
		t.Fatalf("expected plain failure, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	var numErr *strconv.NumError
	if !errors.As(out.Err(), &numErr) {
		t.Fatalf("expected *strconv.NumError, got %T", out.Err())
	}
}

func TestGuardTry_RecoversPanic(t *testing.T) {
	t.Parallel()
	out := GuardTry(1, func(int) (int, error) { panic("try-panic") })
	if !out.Recovered() || out.Err().Error() != "transform panicked: try-panic" {
		t.Fatalf("expected recovered 'try-panic', got: %v", out.Err())
	}
}

func TestLiftAndWrap(t *testing.T) {
	t.Parallel()
	lifted := Lift(strconv.Atoi)
	if r := lifted("12"); !r.IsSuccess() || r.Result() != 12 {
		t.Fatalf("expected 12, got: success=%v, val=%v, err=%v", r.IsSuccess(), r.Result(), r.Err())
	}

	wrapped := Wrap(strconv.Itoa)
	if r := wrapped(7); !r.IsSuccess() || r.Result() != "7" {
		t.Fatalf("expected \"7\", got: success=%v, val=%v", r.IsSuccess(), r.Result())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ok := Finally(Succeed(2), strconv.Itoa, func(err error) string { return "err" })
	bad := Finally(Fail[int](errors.New("x")), strconv.Itoa, func(err error) string { return "err" })
	if ok != "2" || bad != "err" {
		t.Fatalf("expected \"2\" and \"err\", got %q and %q", ok, bad)
	}
}

func TestValues(t *testing.T) {
	t.Parallel()
	e1, e2 := errors.New("e1"), errors.New("e2")
	results := []rop.Result[int]{
		Succeed(1), Fail[int](e1), Succeed(2), Fail[int](e2), Succeed(3),
	}

	values, err := Values(results)
	if len(values) != 3 || values[0] != 1 || values[1] != 2 || values[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", values)
	}
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("expected joined e1 and e2, got %v", err)
	}
	if len(rop.GetErrors(err)) != 2 {
		t.Fatalf("expected flat list of 2 errors, got %v", rop.GetErrors(err))
	}

	values, err = Values([]rop.Result[int]{Succeed(9)})
	if err != nil || len(values) != 1 {
		t.Fatalf("expected [9] and no error, got %v, %v", values, err)
	}
}
