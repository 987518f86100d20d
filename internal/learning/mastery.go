package learning

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-moles/internal/storage"
)

// MasteryRecord marks a term as currently mastered.
type MasteryRecord struct {
	Scope        string    `json:"scope"`
	MasteredAt   time.Time `json:"masteredAt"`
	CorrectCount int       `json:"correctCount"`
}

// MasteryStore tracks which terms the learner has mastered, keyed by term
// identity. A record exists only while the term is considered mastered.
type MasteryStore struct {
	kv      storage.KV
	logger  *log.Logger
	now     clock
	records map[string]MasteryRecord
}

// NewMasteryStore loads mastery progress from kv.
func NewMasteryStore(kv storage.KV, logger *log.Logger) *MasteryStore {
	s := &MasteryStore{
		kv:      kv,
		logger:  discardLogger(logger),
		now:     time.Now,
		records: make(map[string]MasteryRecord),
	}
	if !load(kv, storage.KeyMastery, &s.records, s.logger) || s.records == nil {
		s.records = make(map[string]MasteryRecord)
	}
	return s
}

// MarkMastered records a correct answer for termID. The first call creates the
// record, later calls increment its correct count.
func (s *MasteryStore) MarkMastered(termID, scope string) {
	rec, ok := s.records[termID]
	if !ok {
		rec = MasteryRecord{Scope: scope, MasteredAt: s.now(), CorrectCount: 1}
	} else {
		rec.CorrectCount++
	}
	s.records[termID] = rec
	s.persist()
}

// Revoke deletes the mastery record for termID, if any.
func (s *MasteryStore) Revoke(termID string) {
	if _, ok := s.records[termID]; !ok {
		return
	}
	delete(s.records, termID)
	s.persist()
}

// Get returns the record for termID.
func (s *MasteryStore) Get(termID string) (MasteryRecord, bool) {
	rec, ok := s.records[termID]
	return rec, ok
}

// IsMastered reports whether termID has a mastery record.
func (s *MasteryStore) IsMastered(termID string) bool {
	_, ok := s.records[termID]
	return ok
}

// CountInScope returns how many mastered terms belong to scope.
func (s *MasteryStore) CountInScope(scope string) int {
	n := 0
	for _, rec := range s.records {
		if rec.Scope == scope {
			n++
		}
	}
	return n
}

// IsScopeCompleted reports whether at least 80% of a scope's terms are
// mastered. An empty scope is never completed.
func (s *MasteryStore) IsScopeCompleted(scope string, totalTerms int) bool {
	if totalTerms <= 0 {
		return false
	}
	return s.CountInScope(scope)*CompletionDen >= totalTerms*CompletionNum
}

// CountCompletedScopes counts the scopes in sizes (name -> term count) that
// are completed.
func (s *MasteryStore) CountCompletedScopes(sizes map[string]int) int {
	n := 0
	for scope, total := range sizes {
		if s.IsScopeCompleted(scope, total) {
			n++
		}
	}
	return n
}

// Total returns the number of mastered terms across all scopes.
func (s *MasteryStore) Total() int {
	return len(s.records)
}

// Terms returns the mastered term identities, sorted.
func (s *MasteryStore) Terms() []string {
	terms := make([]string, 0, len(s.records))
	for id := range s.records {
		terms = append(terms, id)
	}
	sort.Strings(terms)
	return terms
}

// StatsByScope maps each scope to its mastered-term count.
func (s *MasteryStore) StatsByScope() map[string]int {
	stats := make(map[string]int)
	for _, rec := range s.records {
		stats[rec.Scope]++
	}
	return stats
}

// Clear removes all mastery records.
func (s *MasteryStore) Clear() {
	s.records = make(map[string]MasteryRecord)
	s.persist()
}

func (s *MasteryStore) persist() {
	save(s.kv, storage.KeyMastery, s.records, s.logger)
}
