package core

import "sync"

// Fields is the map form of structured log context.
type Fields map[string]any

// Record represents one log event. Bindings is the producing Logger's
// immutable context snapshot and is shared, never mutated; Fields is
// owned by the Record. Fields never contains the key "msg" — the
// message is always extracted into Msg.
type Record struct {
	Level    Level
	Msg      string
	Time     int64 // epoch milliseconds
	Bindings Fields
	Fields   Fields
}

// recordPool recycles Records to keep the enabled-with-subscribers
// path allocation-light. Consumers run synchronously and must not
// retain a Record past Handle.
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Fields: make(Fields, 8),
		}
	},
}

// GetRecord retrieves a cleared Record from the pool.
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	return r
}

// PutRecord returns a Record to the pool.
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Msg = ""
	r.Bindings = nil
	clear(r.Fields)
	recordPool.Put(r)
}
