package svc

import (
	"fmt"
	"testing"
)

func TestErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("disk read failed")
	err := Wrap(cause, StreamExhausted, "fetch chunk")
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if err.Kind != StreamExhausted {
		t.Errorf(format, err.Kind, StreamExhausted)
	}
	if err.Cause().Error() != cause.Error() {
		t.Errorf(format, err.Cause(), cause)
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if Wrap(nil, NotFound, "lookup") != nil {
		t.Errorf("expected Wrap(nil, ...) to return nil")
	}
}

func TestResultFailed(t *testing.T) {
	ok := Success(42)
	if ok.Failed() {
		t.Errorf("expected Success result to not be Failed")
	}
	bad := Failure[int](NewError(InvalidParameters, "bad value"))
	if !bad.Failed() {
		t.Errorf("expected Failure result to be Failed")
	}
}

func TestIsKind(t *testing.T) {
	var err error = NewError(DeviceLost, "gpu reset")
	if !Is(err, DeviceLost) {
		t.Errorf("expected Is(err, DeviceLost) to be true")
	}
	if Is(err, NotFound) {
		t.Errorf("expected Is(err, NotFound) to be false")
	}
}

const format = "\ngot\n%v\nwanted\n%v"
