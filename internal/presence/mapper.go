package presence

import "strings"

// NameMatcher decides whether a staff name occurs in a piece of event text.
// Both arguments arrive as-is; implementations handle case folding.
type NameMatcher func(name, text string) bool

// SubstringMatcher is the production matcher: a case-insensitive unanchored
// substring check. A name that is also a common word can false-positive
// against unrelated text; tightening this is a product decision, which is why
// the policy is pluggable instead of baked into the mapping loop.
func SubstringMatcher(name, text string) bool {
	if name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(name))
}

// TokenMatcher is the stricter alternative: the name must appear as a whole
// whitespace-separated token.
func TokenMatcher(name, text string) bool {
	if name == "" {
		return false
	}
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if tok == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// MapStaff produces the per-name status table for today. Every roster name is
// present exactly once, defaulting to Free when no event mentions it. When
// several events match the same name the last one processed wins; there is no
// cross-category merge (kept as observed, pending product confirmation).
func MapStaff(events []Event, staff []string, classifier *Classifier, match NameMatcher) map[string]Status {
	if match == nil {
		match = SubstringMatcher
	}

	statuses := make(map[string]Status, len(staff))
	for _, name := range staff {
		statuses[name] = StatusFree
	}

	for _, ev := range events {
		blob := ev.Summary + " " + ev.Description + " " + ev.Location
		for _, name := range staff {
			if match(name, blob) {
				statuses[name] = classifier.Classify(ev)
			}
		}

		for _, a := range ev.Attendees {
			attendeeText := a.DisplayName + " " + a.Email
			for _, name := range staff {
				if match(name, attendeeText) {
					statuses[name] = classifier.Classify(ev)
				}
			}
		}
	}

	return statuses
}
