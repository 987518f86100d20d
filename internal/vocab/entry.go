// Package vocab provides the read-only vocabulary catalog: ordered scopes of
// bilingual entries with pre-authored decoys for both directions.
package vocab

// Entry is one vocabulary item. Primary is the learner's native-language term,
// Secondary the foreign-language term. Entries are never mutated after load.
type Entry struct {
	Primary              string   `yaml:"primary" json:"primary"`
	Secondary            string   `yaml:"secondary" json:"secondary"`
	SecondaryDistractors []string `yaml:"secondary_distractors" json:"secondaryDistractors"`
	PrimaryDistractors   []string `yaml:"primary_distractors" json:"primaryDistractors"`
}

// ID returns the term identity used to correlate an entry across stores.
func (e Entry) ID() string {
	return e.Secondary
}

// Clone returns a copy that shares no slices with e.
func (e Entry) Clone() Entry {
	e.SecondaryDistractors = append([]string(nil), e.SecondaryDistractors...)
	e.PrimaryDistractors = append([]string(nil), e.PrimaryDistractors...)
	return e
}
