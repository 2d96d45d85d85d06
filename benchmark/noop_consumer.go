package benchmark

import (
	"github.com/mertcanaltin/logbus/consumer"
	"github.com/mertcanaltin/logbus/core"
)

// noopConsumer subscribes everywhere and discards records, isolating
// producer-side cost from serialization and I/O.
type noopConsumer struct {
	consumer.Base
}

func newNoopConsumer() *noopConsumer {
	return &noopConsumer{Base: consumer.NewBase(core.TraceLevel)}
}

func (c *noopConsumer) Handle(rec *core.Record) error {
	_ = len(rec.Msg)
	return nil
}
