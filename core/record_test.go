package core

import (
	"testing"
	"time"
)

func TestRecordPool_Cleared(t *testing.T) {
	r := GetRecord()
	r.Level = ErrorLevel
	r.Msg = "boom"
	r.Time = 12345
	r.Bindings = Fields{"svc": "api"}
	r.Fields["a"] = 1
	PutRecord(r)

	r2 := GetRecord()
	defer PutRecord(r2)
	if r2.Msg != "" {
		t.Errorf("pooled record kept Msg %q", r2.Msg)
	}
	if r2.Bindings != nil {
		t.Errorf("pooled record kept Bindings %v", r2.Bindings)
	}
	if len(r2.Fields) != 0 {
		t.Errorf("pooled record kept Fields %v", r2.Fields)
	}
}

func TestPutRecord_Nil(t *testing.T) {
	PutRecord(nil) // must not panic
}

func TestCoarseClock(t *testing.T) {
	StartCoarseClock()
	StartCoarseClock() // second call is a no-op

	time.Sleep(2 * time.Millisecond)
	coarse := CoarseNow()
	now := time.Now().UnixMilli()
	if diff := now - coarse; diff < 0 || diff > 100 {
		t.Errorf("CoarseNow lags wall clock by %dms", diff)
	}
}

func TestNowMillis(t *testing.T) {
	before := time.Now().UnixMilli()
	got := NowMillis()
	after := time.Now().UnixMilli()
	if got < before || got > after {
		t.Errorf("NowMillis() = %d outside [%d, %d]", got, before, after)
	}
}
