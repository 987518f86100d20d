package session

import "context"

//go:generate mockgen -source=pronouncer.go -destination=mock/pronouncer_mock.go

// Pronouncer speaks a prompt. Implementations cancel any in-flight utterance
// when called again and must return once playback ends, fails or ctx is done.
// Errors are cosmetic: the session logs them and carries on.
type Pronouncer interface {
	Pronounce(ctx context.Context, text string, foreign bool) error
}
