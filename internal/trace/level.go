package trace

import (
	"fmt"
	"strings"
)

// Scope is the granularity of an event. A level lets through every scope
// whose value is not greater than its own.
type Scope uint8

const (
	ScopeRun   Scope = iota + 1 // the command and the directory walk
	ScopeFile                   // one source file
	ScopePhase                  // load, cache, lex, parse
	ScopeCount                  // token and definition counts
)

var scopeNames = [...]string{"", "run", "file", "phase", "count"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && s != 0 {
		return scopeNames[s]
	}
	return "unknown"
}

// Level controls how much is traced.
type Level uint8

const (
	LevelOff Level = iota
	LevelRun
	LevelFile
	LevelPhase
	LevelDebug
)

var levelNames = [...]string{"off", "run", "file", "phase", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// Allows reports whether events of scope s are recorded at level l.
func (l Level) Allows(s Scope) bool {
	return l != LevelOff && s != 0 && uint8(s) <= uint8(l)
}

// ParseLevel converts a --trace-level value.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(s)
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (expected %s)", s, strings.Join(levelNames[:], "|"))
}
