package learning

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-moles/internal/storage"
	"github.com/vovakirdan/word-moles/internal/vocab"
)

// RemediationRecord is a term flagged for repeated practice. The embedded
// entry is a snapshot taken when the term was first missed, so later catalog
// edits do not change an item already in the queue.
type RemediationRecord struct {
	vocab.Entry
	Scope         string    `json:"scope"`
	WrongCount    int       `json:"wrongCount"`
	CorrectStreak int       `json:"correctStreak"`
	AddedAt       time.Time `json:"addedAt"`
	LastWrongAt   time.Time `json:"lastWrongAt"`
}

// RemediationStats summarizes the queue.
type RemediationStats struct {
	Total        int
	ByScope      map[string]int
	TotalWrong   int
	AverageWrong float64
}

// RemediationQueue is the persisted "wrong words" queue keyed by term identity.
type RemediationQueue struct {
	kv      storage.KV
	logger  *log.Logger
	now     clock
	records map[string]RemediationRecord
}

// NewRemediationQueue loads the queue from kv.
func NewRemediationQueue(kv storage.KV, logger *log.Logger) *RemediationQueue {
	q := &RemediationQueue{
		kv:      kv,
		logger:  discardLogger(logger),
		now:     time.Now,
		records: make(map[string]RemediationRecord),
	}
	if !load(kv, storage.KeyWrong, &q.records, q.logger) || q.records == nil {
		q.records = make(map[string]RemediationRecord)
	}
	return q
}

// AddWrong records a miss in normal practice. A new term is inserted with a
// snapshot of its decoys; a queued term has its wrong count bumped and its
// streak reset.
func (q *RemediationQueue) AddWrong(entry vocab.Entry, scope string) {
	now := q.now()
	id := entry.ID()

	if rec, ok := q.records[id]; ok {
		rec.WrongCount++
		rec.CorrectStreak = 0
		rec.LastWrongAt = now
		q.records[id] = rec
	} else {
		q.records[id] = RemediationRecord{
			Entry:       entry.Clone(),
			Scope:       scope,
			WrongCount:  1,
			AddedAt:     now,
			LastWrongAt: now,
		}
	}
	q.persist()
}

// MarkCorrect bumps the correct streak of termID and returns it. Reaching
// ClearStreak removes the term and returns ClearStreak; callers treat any
// value >= ClearStreak as cleared. Unknown terms return 0.
func (q *RemediationQueue) MarkCorrect(termID string) int {
	rec, ok := q.records[termID]
	if !ok {
		return 0
	}

	rec.CorrectStreak++
	streak := rec.CorrectStreak
	if streak >= ClearStreak {
		delete(q.records, termID)
		streak = ClearStreak
	} else {
		q.records[termID] = rec
	}
	q.persist()
	return streak
}

// MarkWrongAgain records another miss of a queued term. Unknown terms are
// ignored.
func (q *RemediationQueue) MarkWrongAgain(termID string) {
	rec, ok := q.records[termID]
	if !ok {
		return
	}
	rec.WrongCount++
	rec.CorrectStreak = 0
	rec.LastWrongAt = q.now()
	q.records[termID] = rec
	q.persist()
}

// Get returns the queued record for termID.
func (q *RemediationQueue) Get(termID string) (RemediationRecord, bool) {
	rec, ok := q.records[termID]
	return rec, ok
}

// Has reports whether termID is queued.
func (q *RemediationQueue) Has(termID string) bool {
	_, ok := q.records[termID]
	return ok
}

// All returns every queued record, oldest first.
func (q *RemediationQueue) All() []RemediationRecord {
	all := make([]RemediationRecord, 0, len(q.records))
	for _, rec := range q.records {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].AddedAt.Equal(all[j].AddedAt) {
			return all[i].AddedAt.Before(all[j].AddedAt)
		}
		return all[i].ID() < all[j].ID()
	})
	return all
}

// Entries returns the snapshots of every queued term, oldest first.
func (q *RemediationQueue) Entries() []vocab.Entry {
	all := q.All()
	entries := make([]vocab.Entry, len(all))
	for i, rec := range all {
		entries[i] = rec.Entry
	}
	return entries
}

// Count returns the number of queued terms.
func (q *RemediationQueue) Count() int {
	return len(q.records)
}

// Stats summarizes the queue.
func (q *RemediationQueue) Stats() RemediationStats {
	stats := RemediationStats{ByScope: make(map[string]int)}
	for _, rec := range q.records {
		stats.Total++
		stats.ByScope[rec.Scope]++
		stats.TotalWrong += rec.WrongCount
	}
	if stats.Total > 0 {
		stats.AverageWrong = float64(stats.TotalWrong) / float64(stats.Total)
	}
	return stats
}

// Clear empties the queue.
func (q *RemediationQueue) Clear() {
	q.records = make(map[string]RemediationRecord)
	q.persist()
}

func (q *RemediationQueue) persist() {
	save(q.kv, storage.KeyWrong, q.records, q.logger)
}
