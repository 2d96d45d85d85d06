package logger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mertcanaltin/logbus/core"
)

type chainErr struct {
	msg   string
	cause error
}

func (e *chainErr) Error() string { return e.msg }
func (e *chainErr) Unwrap() error { return e.cause }

type codedErr struct {
	msg string
}

func (e *codedErr) Error() string { return e.msg }
func (e *codedErr) Code() string  { return "E_TIMEOUT" }

type richErr struct {
	msg  string
	Op   string
	Port int
	Seen bool
}

func (e *richErr) Error() string { return e.msg }

func TestSerializeError_Basic(t *testing.T) {
	f := SerializeError(errors.New("boom"))
	if f["name"] != "*errors.errorString" {
		t.Errorf("name = %v", f["name"])
	}
	if f["message"] != "boom" {
		t.Errorf("message = %v", f["message"])
	}
	if s, _ := f["stack"].(string); s == "" {
		t.Error("stack missing")
	}
	if _, ok := f["cause"]; ok {
		t.Error("unexpected cause on a leaf error")
	}
}

func TestSerializeError_CauseChain(t *testing.T) {
	leaf := errors.New("leaf")
	mid := fmt.Errorf("mid: %w", leaf)
	f := SerializeError(fmt.Errorf("top: %w", mid))

	c1, ok := f["cause"].(core.Fields)
	if !ok {
		t.Fatalf("cause missing: %v", f)
	}
	if c1["message"] != "mid: leaf" {
		t.Errorf("cause.message = %v", c1["message"])
	}
	c2, ok := c1["cause"].(core.Fields)
	if !ok {
		t.Fatalf("nested cause missing: %v", c1)
	}
	if c2["message"] != "leaf" {
		t.Errorf("cause.cause.message = %v", c2["message"])
	}
	// stack only at the top
	if _, ok := c1["stack"]; ok {
		t.Error("intermediate causes should not capture stacks")
	}
}

func TestSerializeError_Cycle(t *testing.T) {
	a := &chainErr{msg: "a"}
	b := &chainErr{msg: "b", cause: a}
	a.cause = b

	f := SerializeError(a)
	c1, ok := f["cause"].(core.Fields)
	if !ok {
		t.Fatalf("cause missing: %v", f)
	}
	if c1["message"] != "b" {
		t.Errorf("cause.message = %v", c1["message"])
	}
	if c1["cause"] != circularMarker {
		t.Errorf("revisited ancestor must serialize as marker, got %v", c1["cause"])
	}
}

func TestSerializeError_SelfCycle(t *testing.T) {
	a := &chainErr{msg: "a"}
	a.cause = a
	f := SerializeError(a)
	if f["cause"] != circularMarker {
		t.Errorf("self-cause must serialize as marker, got %v", f["cause"])
	}
}

func TestSerializeError_Code(t *testing.T) {
	f := SerializeError(&codedErr{msg: "late"})
	if f["code"] != "E_TIMEOUT" {
		t.Errorf("code = %v", f["code"])
	}
}

func TestSerializeError_ExtrasSetIfAbsent(t *testing.T) {
	f := SerializeError(&richErr{msg: "dial failed", Op: "dial", Port: 0, Seen: false})
	if f["Op"] != "dial" {
		t.Errorf("Op = %v", f["Op"])
	}
	// Zero values survive: strict set-if-absent, no falsy overwrite.
	if v, ok := f["Port"]; !ok || v != 0 {
		t.Errorf("Port = %v, want explicit 0", v)
	}
	if v, ok := f["Seen"]; !ok || v != false {
		t.Errorf("Seen = %v, want explicit false", v)
	}
	if f["message"] != "dial failed" {
		t.Error("reserved keys must not be overwritten by extras")
	}
}
