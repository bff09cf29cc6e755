package engine

// #region imports
import "strings"

// #endregion

// #region phrase-detector

// PhraseDetector matches any phrase from a fixed list as a case-insensitive
// substring. Each detector owns its phrase set as data so the sets can be
// unit-tested and replaced without touching control flow.
type PhraseDetector struct {
	Name    string
	Phrases []string
}

// Match reports whether any of the detector's phrases occurs in text.
func (d PhraseDetector) Match(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range d.Phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// #endregion

// #region detectors

// shockDetector fires on destabilizing phrases and triggers magnitude
// compression on the event's X.
var shockDetector = PhraseDetector{
	Name: "shock",
	Phrases: []string{
		"i don't care who gets hurt",
		"no matter the cost",
		"even if people suffer",
		"crush anyone",
		"wipe them out",
	},
}

// circularDetector fires on self-referential moral-authority justifications.
var circularDetector = PhraseDetector{
	Name: "circular",
	Phrases: []string{
		"it is right because i say so",
		"it is good because i define good",
		"i am the standard of morality",
	},
}

// hardLockDetector fires on self-declared moral perfection or infallibility
// claims. This is the only trigger for the terminal session lock.
var hardLockDetector = PhraseDetector{
	Name: "hard_lock",
	Phrases: []string{
		"i am morally perfect",
		"i am perfectly moral",
		"i am always right",
		"i cannot be wrong about morality",
	},
}

// #endregion
