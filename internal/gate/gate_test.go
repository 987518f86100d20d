package gate

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/word-moles/internal/learning"
	"github.com/vovakirdan/word-moles/internal/storage"
	"github.com/vovakirdan/word-moles/internal/vocab"
)

func scope(name string, n int) vocab.Scope {
	s := vocab.Scope{Name: name}
	for i := 0; i < n; i++ {
		s.Entries = append(s.Entries, vocab.Entry{
			Primary:   fmt.Sprintf("%s-p%d", name, i),
			Secondary: fmt.Sprintf("%s-s%d", name, i),
		})
	}
	return s
}

func TestIsLocked(t *testing.T) {
	tests := []struct {
		name                    string
		index, completed, start int
		want                    bool
	}{
		{"first scope always open", 0, 0, 0, false},
		{"second locked", 1, 0, 0, true},
		{"second open after one completed", 1, 1, 0, false},
		{"third needs two", 2, 1, 0, true},
		{"starting scope opens itself", 2, 0, 2, false},
		{"starting scope opens earlier ones", 1, 0, 2, false},
		{"beyond start still locked", 3, 0, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocked(tt.index, tt.completed, tt.start))
		})
	}
}

func TestEvaluate(t *testing.T) {
	catalog, err := vocab.New([]vocab.Scope{scope("1年级", 10), scope("2年级", 5), scope("3年级", 5)})
	require.NoError(t, err)
	mastery := learning.NewMasteryStore(storage.NewMemoryKV(), nil)

	for i := 0; i < 7; i++ {
		mastery.MarkMastered(fmt.Sprintf("1年级-s%d", i), "1年级")
	}
	st := Evaluate(catalog, mastery, "")
	require.Len(t, st, 3)
	assert.False(t, st[0].Completed)
	assert.Equal(t, 7, st[0].Mastered)
	assert.Equal(t, 10, st[0].Size)
	assert.False(t, st[0].Locked)
	assert.True(t, st[1].Locked)

	mastery.MarkMastered("1年级-s7", "1年级")
	st = Evaluate(catalog, mastery, "")
	assert.True(t, st[0].Completed)
	assert.False(t, st[1].Locked)
	assert.True(t, st[2].Locked)

	assert.True(t, Unlocked(catalog, mastery, "3年级", "3年级"))
	assert.False(t, Unlocked(catalog, mastery, "", "missing"))
}

func TestChallenge(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		c := NewChallenge(rng)
		assert.GreaterOrEqual(t, c.A, MinFactor)
		assert.LessOrEqual(t, c.B, MaxFactor)
		assert.True(t, c.Check(c.A*c.B))
		assert.False(t, c.Check(c.A*c.B+1))
	}

	c := Challenge{A: 3, B: 12}
	assert.Equal(t, "叁 × 拾貳 = ?  (3 × 12)", c.Prompt())
	assert.Equal(t, "13", Numeral(13))
}
