package speech

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// Command speaks through an external text-to-speech program. Only one
// utterance plays at a time: a new call kills the previous process.
type Command struct {
	title string
	bin   string
	args  func(text string, foreign bool) []string

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

func newESpeak(bin string) *Command {
	return &Command{
		title: bin,
		bin:   bin,
		args: func(text string, foreign bool) []string {
			voice := "cmn"
			if foreign {
				voice = "en-us"
			}
			return []string{"-v", voice, "-s", "140", text}
		},
	}
}

func newSay() *Command {
	return &Command{
		title: "macOS say",
		bin:   "say",
		args: func(text string, foreign bool) []string {
			voice := "Tingting"
			if foreign {
				voice = "Samantha"
			}
			return []string{"-v", voice, text}
		},
	}
}

func (c *Command) Title() string { return c.title }

// Available reports whether the program is on PATH.
func (c *Command) Available() bool {
	_, err := exec.LookPath(c.bin)
	return err == nil
}

// Pronounce runs the program and waits for it to exit.
func (c *Command) Pronounce(ctx context.Context, text string, foreign bool) error {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.seq == seq {
			c.cancel = nil
		}
		c.mu.Unlock()
		cancel()
	}()

	cmd := exec.CommandContext(ctx, c.bin, c.args(text, foreign)...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("speech: %s: %w", c.bin, err)
	}
	return nil
}
