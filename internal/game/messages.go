package game

import "fmt"

// describe returns the alert title and message shown for a rejection.
func describe(kind Kind, minLength int) (title, message string) {
	switch kind {
	case KindWordUsed:
		return "Word used already", "Be more original"
	case KindWordImpossible:
		return "Word not possible", "Doesn't work"
	case KindWordNotReal:
		return "Word doesn't exist", "Come on now"
	case KindWordTooShort:
		return "Word is too small", fmt.Sprintf("We only accept words greater than %d letters", minLength-1)
	}
	return "", ""
}
