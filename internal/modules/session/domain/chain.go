package domain

// LongBreakEvery is how many work sessions earn a long break.
const LongBreakEvery = 4

// FollowUp returns the break to offer after a session, if any. Only a
// completed work session is followed by a break; breaks never chain.
func FollowUp(t Type, completed bool, sessionNumber int) (Type, bool) {
	if !completed || !t.IsWork() {
		return "", false
	}
	if sessionNumber > 0 && sessionNumber%LongBreakEvery == 0 {
		return TypeLongBreak, true
	}
	return TypeShortBreak, true
}
