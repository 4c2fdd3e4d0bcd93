package entity

// Mood is the display state of a paired device.
type Mood string

const (
	MoodDefault Mood = "DEFAULT"
	MoodHappy   Mood = "HAPPY"
	MoodTired   Mood = "TIRED"
	MoodAngry   Mood = "ANGRY"
)

// String returns the string representation of the Mood.
func (m Mood) String() string {
	return string(m)
}

// IsValid checks if the Mood is one of the supported values.
func (m Mood) IsValid() bool {
	switch m {
	case MoodDefault, MoodHappy, MoodTired, MoodAngry:
		return true
	default:
		return false
	}
}
