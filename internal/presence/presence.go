// Package presence infers per-person availability for the current day from
// the office Google Calendar feed.
package presence

import "strings"

// Status is the inferred availability of one staff member. The values are the
// display strings injected into the prompt.
type Status string

const (
	StatusFree     Status = "Libero"
	StatusBusy     Status = "Occupato"
	StatusOffSite  Status = "Fuori sede"
	StatusRemote   Status = "Smart working"
	StatusInOffice Status = "In ufficio"
)

// Event is a calendar event reduced to the fields presence inference reads.
type Event struct {
	Summary     string
	Description string
	Location    string
	Attendees   []Attendee
}

// Attendee is one invitee on a calendar event.
type Attendee struct {
	DisplayName string
	Email       string
}

// Rule maps a keyword set to a status. Keywords match case-insensitively as
// substrings of the event summary; LocationKeywords match against the event
// location the same way.
type Rule struct {
	Keywords         []string
	LocationKeywords []string
	Status           Status
}

// Classifier assigns a status to a single event using first-match priority
// over its ordered rule list. Rule order is product policy: reordering the
// slice changes precedence without touching any code.
type Classifier struct {
	Rules    []Rule
	Fallback Status
}

// NewClassifier builds a classifier with the production rule ordering:
// off-site keywords win over remote-work keywords, which win over office
// keywords; anything else with an event is Busy. The office rule also fires
// when the event location names the office site.
func NewClassifier(offsite, remote, office []string, officeSite string) *Classifier {
	var officeLocation []string
	if officeSite != "" {
		officeLocation = []string{officeSite}
	}

	return &Classifier{
		Rules: []Rule{
			{Keywords: offsite, Status: StatusOffSite},
			{Keywords: remote, Status: StatusRemote},
			{Keywords: office, LocationKeywords: officeLocation, Status: StatusInOffice},
		},
		Fallback: StatusBusy,
	}
}

// Classify returns the status for one event. Pure function: no state, the
// event alone decides.
func (c *Classifier) Classify(ev Event) Status {
	summary := strings.ToLower(ev.Summary)
	location := strings.ToLower(ev.Location)

	for _, rule := range c.Rules {
		if containsAny(summary, rule.Keywords) || containsAny(location, rule.LocationKeywords) {
			return rule.Status
		}
	}
	return c.Fallback
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, k := range keywords {
		if k != "" && strings.Contains(text, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
