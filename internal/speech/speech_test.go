package speech

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/word-moles/internal/registry"
)

func shell(script string) *Command {
	return &Command{
		title: "sh",
		bin:   "sh",
		args: func(string, bool) []string {
			return []string{"-c", script}
		},
	}
}

func TestVoicesRegistered(t *testing.T) {
	for _, id := range []string{"silent", "say", "espeak", "espeak-ng"} {
		assert.True(t, registry.Exists(id), id)
	}
}

func TestResolve(t *testing.T) {
	v, err := Resolve("silent")
	require.NoError(t, err)
	assert.Equal(t, "Silent", v.Title())

	v, err = Resolve(Auto)
	require.NoError(t, err)
	assert.True(t, v.Available())

	_, err = Resolve("klingon")
	assert.Error(t, err)
}

func TestSilent(t *testing.T) {
	assert.NoError(t, Silent{}.Pronounce(context.Background(), "猫", false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Silent{}.Pronounce(ctx, "猫", false), context.Canceled)
}

func TestCommandArgs(t *testing.T) {
	e := newESpeak("espeak-ng")
	assert.Equal(t, []string{"-v", "en-us", "-s", "140", "cat"}, e.args("cat", true))
	assert.Equal(t, []string{"-v", "cmn", "-s", "140", "猫"}, e.args("猫", false))
}

func TestCommandRunAndFail(t *testing.T) {
	assert.NoError(t, shell("exit 0").Pronounce(context.Background(), "x", false))
	assert.Error(t, shell("exit 3").Pronounce(context.Background(), "x", false))

	missing := &Command{bin: "definitely-not-a-tts-binary", args: func(string, bool) []string { return nil }}
	assert.False(t, missing.Available())
	assert.Error(t, missing.Pronounce(context.Background(), "x", false))
}

func TestCommandCancelsPrevious(t *testing.T) {
	c := shell("sleep 5")

	first := make(chan error, 1)
	go func() { first <- c.Pronounce(context.Background(), "a", false) }()

	// Wait for the first utterance to register.
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.cancel != nil
	}, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_ = c.Pronounce(ctx, "b", false)

	select {
	case err := <-first:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("first utterance was not cancelled")
	}
}
