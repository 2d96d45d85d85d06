// Package bus decouples record producers from consumers with one
// publish/subscribe channel per severity level.
//
// Publish is a direct synchronous call: a record is fully handled by
// every subscriber, in subscription order, before the producing log
// call returns. The value of the indirection is the zero-subscriber
// case — HasSubscribers is a single atomic load, and Lookup returns
// nil for levels nothing ever subscribed to, so producers skip all
// Record construction when nobody is listening.
//
// The process-wide registry behind Default() is created on first use
// and has no teardown besides process exit. It is an explicit,
// injectable instance rather than a hidden global: anything that
// accepts a *Registry (loggers, consumers, tests) can be pointed at
// its own.
package bus
