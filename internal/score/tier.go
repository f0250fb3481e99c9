package score

// Tier is a feedback band derived from a score normalized to 60 seconds.
type Tier int

// Tiers from lowest to highest.
const (
	KeepGoing Tier = iota
	CanImprove
	RoomForImprovement
	WellDone
	Expert
)

// Rate normalizes score to a per-minute rate. A non-positive duration leaves
// the score as is.
func Rate(score, seconds int) float64 {
	if seconds > 0 {
		return float64(score) * 60 / float64(seconds)
	}
	return float64(score)
}

// TierFor returns the tier for a score achieved over seconds.
func TierFor(score, seconds int) Tier {
	ratio := Rate(score, seconds)
	switch {
	case ratio >= 60:
		return Expert
	case ratio >= 30:
		return WellDone
	case ratio >= 20:
		return RoomForImprovement
	case ratio >= 10:
		return CanImprove
	default:
		return KeepGoing
	}
}

func (t Tier) String() string {
	switch t {
	case Expert:
		return "expert"
	case WellDone:
		return "well done"
	case RoomForImprovement:
		return "room for improvement"
	case CanImprove:
		return "can improve"
	default:
		return "keep going"
	}
}

// Message is the sentence shown to the patient.
func (t Tier) Message() string {
	switch t {
	case Expert:
		return "YOU ARE AN EXPERT NOW!"
	case WellDone:
		return "Well done! Nice!"
	case RoomForImprovement:
		return "Very well done! But still there is always room for improvement"
	case CanImprove:
		return "Not bad but you can improve!"
	default:
		return "Keep going!"
	}
}
