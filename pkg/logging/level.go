package logging

import (
	"os"
	"strings"

	"go.llib.dev/rangekit/pkg/errorkit"
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

const ErrUnknownLevel errorkit.Error = "unknown logging level"

type Level string

func (ll Level) String() string { return string(ll) }

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelFatal: 4,

	*new(Level): 1, // zero Level value is considered as LevelInfo
}

func isLevelEnabled(target, level Level) bool {
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}

// ParseLevel accepts the level names case insensitively.
func ParseLevel(raw string) (Level, error) {
	lvl := Level(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := levelPriorityMapping[lvl]; !ok {
		return "", ErrUnknownLevel.F("%q", raw)
	}
	return lvl, nil
}

// LevelFromEnv reads the LOG_LEVEL environment variable.
// An unset variable yields the zero Level.
func LevelFromEnv() (Level, error) {
	raw, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return "", nil
	}
	return ParseLevel(raw)
}
