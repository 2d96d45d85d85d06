package core

import (
	"errors"
	"strconv"
)

// InvalidLevelError reports an unrecognized level name at Logger or
// Consumer construction, or in a Child level override.
type InvalidLevelError struct {
	Name string
}

func (e *InvalidLevelError) Error() string {
	return "logbus: unknown level " + strconv.Quote(e.Name)
}

// InvalidArgumentError reports a malformed call: a structured message
// missing its "msg" string, an unsupported input type, or malformed
// options. These are caller bugs; they are raised at the call
// boundary and never retried or swallowed.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "logbus: invalid argument: " + e.Reason
}

// ErrUnimplemented is returned by consumer.Base.Handle when a concrete
// consumer embeds Base without overriding Handle.
var ErrUnimplemented = errors.New("logbus: Handle not implemented")
