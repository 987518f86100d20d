package learning

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/word-moles/internal/storage"
	"github.com/vovakirdan/word-moles/internal/vocab"
)

type brokenKV struct {
	getErr error
	setErr error
}

func (b brokenKV) Get(string) (string, bool, error) { return "", false, b.getErr }
func (b brokenKV) Set(string, string) error         { return b.setErr }
func (b brokenKV) Remove(string) error              { return nil }

func fixedClock(t time.Time) clock {
	return func() time.Time { return t }
}

func TestMasteryMarkAndRevoke(t *testing.T) {
	s := NewMasteryStore(storage.NewMemoryKV(), nil)

	s.MarkMastered("cat", "1年级")
	s.MarkMastered("cat", "1年级")
	rec, ok := s.Get("cat")
	require.True(t, ok)
	assert.Equal(t, 2, rec.CorrectCount)
	assert.Equal(t, "1年级", rec.Scope)

	s.Revoke("cat")
	assert.False(t, s.IsMastered("cat"))

	// Revoking an unknown term is a no-op.
	s.Revoke("dog")
	assert.Equal(t, 0, s.Total())
}

func TestMasteryPersistsAcrossInstances(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewMasteryStore(kv, nil)
	s.MarkMastered("cat", "A")
	s.MarkMastered("dog", "B")

	reloaded := NewMasteryStore(kv, nil)
	assert.Equal(t, []string{"cat", "dog"}, reloaded.Terms())
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, reloaded.StatsByScope())
}

func TestScopeCompletionThreshold(t *testing.T) {
	s := NewMasteryStore(storage.NewMemoryKV(), nil)
	for i := 0; i < 7; i++ {
		s.MarkMastered(fmt.Sprintf("t%d", i), "A")
	}
	assert.False(t, s.IsScopeCompleted("A", 10))

	s.MarkMastered("t7", "A")
	assert.True(t, s.IsScopeCompleted("A", 10))

	assert.False(t, s.IsScopeCompleted("A", 0), "empty scope is never completed")
	assert.False(t, s.IsScopeCompleted("B", 10))
}

func TestScopeCompletionMatchesCeiling(t *testing.T) {
	for n := 1; n <= 60; n++ {
		s := NewMasteryStore(storage.NewMemoryKV(), nil)
		need := (4*n + 4) / 5 // ceil(0.8n)
		for i := 0; i < need-1; i++ {
			s.MarkMastered(fmt.Sprintf("t%d", i), "A")
		}
		assert.False(t, s.IsScopeCompleted("A", n), "n=%d count=%d", n, need-1)
		s.MarkMastered("last", "A")
		assert.True(t, s.IsScopeCompleted("A", n), "n=%d count=%d", n, need)
	}
}

func TestCountCompletedScopes(t *testing.T) {
	s := NewMasteryStore(storage.NewMemoryKV(), nil)
	for i := 0; i < 4; i++ {
		s.MarkMastered(fmt.Sprintf("a%d", i), "A")
	}
	s.MarkMastered("b0", "B")

	sizes := map[string]int{"A": 5, "B": 5, "C": 0}
	assert.Equal(t, 1, s.CountCompletedScopes(sizes))
}

func TestMasteryCorruptDataResets(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(storage.KeyMastery, "{not json"))

	s := NewMasteryStore(kv, nil)
	assert.Equal(t, 0, s.Total())

	s.MarkMastered("cat", "A")
	assert.Equal(t, 1, NewMasteryStore(kv, nil).Total())
}

func TestMasteryStorageFailureKeepsMemoryState(t *testing.T) {
	kv := brokenKV{getErr: errors.New("read"), setErr: errors.New("write")}
	s := NewMasteryStore(kv, nil)
	s.MarkMastered("cat", "A")
	assert.True(t, s.IsMastered("cat"))
}

func TestMasteryClear(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewMasteryStore(kv, nil)
	s.MarkMastered("cat", "A")
	s.Clear()
	assert.Equal(t, 0, s.Total())
	assert.Equal(t, 0, NewMasteryStore(kv, nil).Total())
}

func TestRemediationLifecycle(t *testing.T) {
	q := NewRemediationQueue(storage.NewMemoryKV(), nil)
	cat := vocab.Entry{Primary: "猫", Secondary: "cat", SecondaryDistractors: []string{"dog"}}

	q.AddWrong(cat, "1年级")
	rec, ok := q.Get("cat")
	require.True(t, ok)
	assert.Equal(t, 1, rec.WrongCount)
	assert.Equal(t, 0, rec.CorrectStreak)
	assert.Equal(t, "1年级", rec.Scope)

	assert.Equal(t, 1, q.MarkCorrect("cat"))
	assert.Equal(t, 2, q.MarkCorrect("cat"))
	assert.Equal(t, 3, q.MarkCorrect("cat"))
	assert.False(t, q.Has("cat"))
	assert.Equal(t, 0, q.MarkCorrect("cat"))
}

func TestRemediationWrongResetsStreak(t *testing.T) {
	q := NewRemediationQueue(storage.NewMemoryKV(), nil)
	cat := vocab.Entry{Primary: "猫", Secondary: "cat"}

	q.AddWrong(cat, "A")
	q.MarkCorrect("cat")
	q.MarkCorrect("cat")
	q.MarkWrongAgain("cat")

	rec, _ := q.Get("cat")
	assert.Equal(t, 0, rec.CorrectStreak)
	assert.Equal(t, 2, rec.WrongCount)

	q.AddWrong(cat, "A")
	rec, _ = q.Get("cat")
	assert.Equal(t, 3, rec.WrongCount)
	assert.Equal(t, 1, q.Count())

	// Unknown terms are ignored.
	q.MarkWrongAgain("dog")
	assert.False(t, q.Has("dog"))
}

func TestRemediationSnapshotIsIndependent(t *testing.T) {
	q := NewRemediationQueue(storage.NewMemoryKV(), nil)
	decoys := []string{"dog", "pig"}
	q.AddWrong(vocab.Entry{Primary: "猫", Secondary: "cat", SecondaryDistractors: decoys}, "A")

	decoys[0] = "mutated"
	rec, _ := q.Get("cat")
	assert.Equal(t, []string{"dog", "pig"}, rec.SecondaryDistractors)
}

func TestRemediationPersistsAndOrders(t *testing.T) {
	kv := storage.NewMemoryKV()
	q := NewRemediationQueue(kv, nil)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	q.now = fixedClock(base.Add(time.Minute))
	q.AddWrong(vocab.Entry{Primary: "狗", Secondary: "dog"}, "A")
	q.now = fixedClock(base)
	q.AddWrong(vocab.Entry{Primary: "猫", Secondary: "cat", PrimaryDistractors: []string{"狗"}}, "B")

	reloaded := NewRemediationQueue(kv, nil)
	all := reloaded.All()
	require.Len(t, all, 2)
	assert.Equal(t, "cat", all[0].ID())
	assert.Equal(t, "dog", all[1].ID())
	assert.Equal(t, []string{"狗"}, all[0].PrimaryDistractors)

	entries := reloaded.Entries()
	assert.Equal(t, "猫", entries[0].Primary)
}

func TestRemediationStats(t *testing.T) {
	q := NewRemediationQueue(storage.NewMemoryKV(), nil)
	assert.Equal(t, 0.0, q.Stats().AverageWrong)

	q.AddWrong(vocab.Entry{Primary: "猫", Secondary: "cat"}, "A")
	q.AddWrong(vocab.Entry{Primary: "猫", Secondary: "cat"}, "A")
	q.AddWrong(vocab.Entry{Primary: "狗", Secondary: "dog"}, "B")

	stats := q.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 3, stats.TotalWrong)
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, stats.ByScope)
	assert.InDelta(t, 1.5, stats.AverageWrong, 1e-9)

	q.Clear()
	assert.Equal(t, 0, q.Count())
}

func TestRemediationCorruptDataResets(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(storage.KeyWrong, "[]"))
	assert.Equal(t, 0, NewRemediationQueue(kv, nil).Count())
}
