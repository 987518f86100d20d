// Package learning holds the two persisted learner-state stores: mastery
// progress per term and the wrong-words remediation queue.
//
// Both stores keep an authoritative in-memory map and write the whole map as
// one JSON value to a storage.KV on every mutation. Storage failures are
// logged and swallowed: a failed write leaves the in-memory state in place
// for the rest of the process, and a failed or corrupt read starts empty.
package learning

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-moles/internal/storage"
)

// Fixed learning thresholds.
const (
	// ClearStreak is the number of consecutive correct answers that removes a
	// term from the remediation queue.
	ClearStreak = 3

	// A scope is completed when at least CompletionNum/CompletionDen of its
	// terms are mastered (80%).
	CompletionNum = 4
	CompletionDen = 5
)

func discardLogger(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}

// load decodes key into dst. Absent keys leave dst untouched; read and
// decode failures are logged and reported as false so the caller resets.
func load(kv storage.KV, key string, dst any, logger *log.Logger) bool {
	raw, ok, err := kv.Get(key)
	if err != nil {
		logger.Error("failed to load learner state", "key", key, "error", err)
		return false
	}
	if !ok {
		return true
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Error("discarding corrupt learner state", "key", key, "error", err)
		return false
	}
	return true
}

// save encodes v under key, logging instead of returning failures.
func save(kv storage.KV, key string, v any, logger *log.Logger) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("failed to encode learner state", "key", key, "error", err)
		return
	}
	if err := kv.Set(key, string(data)); err != nil {
		logger.Error("failed to save learner state", "key", key, "error", err)
	}
}

type clock func() time.Time
