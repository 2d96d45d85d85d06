package core

import "strings"

// Level indexes the fixed severity scale. The zero value is TraceLevel;
// levels are totally ordered, so comparing indexes is equivalent to
// comparing weights.
type Level int8

const (
	// TraceLevel for very fine-grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable failures
	FatalLevel

	numLevels = 6
)

// NumLevels is the size of the severity scale.
const NumLevels = int(numLevels)

var levelWeights = [numLevels]int{10, 20, 30, 40, 50, 60}

var levelNames = [numLevels]string{"trace", "debug", "info", "warn", "error", "fatal"}

// Weight returns the numeric severity weight carried on the wire.
func (l Level) Weight() int {
	if l < 0 || l >= numLevels {
		return 0
	}
	return levelWeights[l]
}

// String returns the lowercase name of the level.
func (l Level) String() string {
	if l < 0 || l >= numLevels {
		return "unknown"
	}
	return levelNames[l]
}

// Enabled reports whether a record at level l passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold
}

// ParseLevel converts a level name to a Level. Unrecognized names fail
// with *InvalidLevelError; there is no silent default, callers that
// want one check for the empty string themselves.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return 0, &InvalidLevelError{Name: s}
	}
}
