package session

// Summary is the end-of-session report handed to the leaderboard.
type Summary struct {
	Mode     Mode
	Scope    string
	Reason   EndReason
	Score    int
	MaxCombo int
	Answered int
	Correct  int
	Accuracy float64 // Correct / Answered, 0 when nothing was answered
	Learned  int     // Distinct terms answered correctly (practice)
	Cleared  int     // Terms that left the remediation queue (challenge)
	Duration int     // Configured seconds
	Played   int     // Seconds actually counted down
	Rank     string
}

// Summary computes the session report. It is meaningful once the session
// has ended but can be called at any time.
func (s *Session) Summary() Summary {
	sum := Summary{
		Mode:     s.cfg.Mode,
		Scope:    s.cfg.Scope,
		Reason:   s.endReason,
		Score:    s.score,
		MaxCombo: s.maxCombo,
		Answered: s.answered,
		Correct:  s.correct,
		Learned:  len(s.learned),
		Cleared:  s.cleared,
		Duration: s.cfg.Duration,
		Played:   s.cfg.Duration - s.timeLeft,
		Rank:     Rank(s.score),
	}
	if s.answered > 0 {
		sum.Accuracy = float64(s.correct) / float64(s.answered)
	}
	return sum
}
