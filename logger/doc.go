// Package logger is the producing side of logbus. Most applications
// only need this package and a consumer.
//
// A Logger is immutable after construction: the threshold, its
// derived gate bitmap, and the bindings snapshot never change, so the
// read path needs no locking. The gate is computed once in New — a
// call at a disabled level costs one mask test and returns before any
// timestamp, merge, or allocation. A call at an enabled level still
// builds nothing until the level's channel reports a subscriber.
//
// The log methods accept three input shapes, classified once at the
// call boundary: a message string, a structured map carrying a string
// "msg", or an error (its message becomes msg and its serialized form
// is attached under "err"). Malformed calls panic with
// *core.InvalidArgumentError; construction-time problems are returned
// as errors.
//
// Child returns an independent sibling logger with merged bindings:
//
//	reqLog, _ := log.Child(core.Fields{"request_id": id})
//
// Neither parent nor child can observe the other afterward.
package logger
