package session

// Rank titles awarded by final score.
var ranks = []struct {
	below int
	title string
}{
	{50, "Novice Hunter"},
	{100, "Rising Star"},
	{200, "Expert Hunter"},
	{300, "Master Hunter"},
}

// Rank returns the title for a final score.
func Rank(score int) string {
	for _, r := range ranks {
		if score < r.below {
			return r.title
		}
	}
	return "Legendary Hunter"
}
