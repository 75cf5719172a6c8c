package presence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultClassifier() *Classifier {
	return NewClassifier(
		[]string{"sopralluogo", "cantiere", "cliente", "visit"},
		[]string{"smart", "remoto", "da casa"},
		[]string{"ufficio", "sede"},
		"arzignano",
	)
}

func TestClassify(t *testing.T) {
	c := defaultClassifier()

	tests := []struct {
		name     string
		event    Event
		expected Status
	}{
		{
			name:     "site visit is off-site",
			event:    Event{Summary: "Sopralluogo cantiere Rossi"},
			expected: StatusOffSite,
		},
		{
			name:     "smart working is remote",
			event:    Event{Summary: "Smart working"},
			expected: StatusRemote,
		},
		{
			name:     "office meeting is in-office",
			event:    Event{Summary: "Riunione in ufficio"},
			expected: StatusInOffice,
		},
		{
			name:     "client call matches off-site before office",
			event:    Event{Summary: "Call cliente X"},
			expected: StatusOffSite,
		},
		{
			name:     "office site in location is in-office",
			event:    Event{Summary: "Riunione mensile", Location: "Sala grande, Arzignano"},
			expected: StatusInOffice,
		},
		{
			name:     "unknown event is busy",
			event:    Event{Summary: "Formazione interna"},
			expected: StatusBusy,
		},
		{
			name:     "matching is case-insensitive",
			event:    Event{Summary: "SOPRALLUOGO URGENTE"},
			expected: StatusOffSite,
		},
		{
			name:     "empty event is busy",
			event:    Event{},
			expected: StatusBusy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.event))
		})
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	// Reordering the rule slice changes precedence without code changes.
	c := &Classifier{
		Rules: []Rule{
			{Keywords: []string{"ufficio"}, Status: StatusInOffice},
			{Keywords: []string{"cliente"}, Status: StatusOffSite},
		},
		Fallback: StatusBusy,
	}

	assert.Equal(t, StatusInOffice, c.Classify(Event{Summary: "Cliente in ufficio"}))
}

func TestMapStaff(t *testing.T) {
	c := defaultClassifier()
	staff := []string{"Mario", "Lucia", "Anna"}

	t.Run("every roster name present with free default", func(t *testing.T) {
		got := MapStaff(nil, staff, c, nil)

		assert.Len(t, got, 3)
		for _, name := range staff {
			assert.Equal(t, StatusFree, got[name])
		}
	})

	t.Run("name in summary gets classified status", func(t *testing.T) {
		events := []Event{{Summary: "Sopralluogo cantiere con Mario"}}

		got := MapStaff(events, staff, c, nil)
		assert.Equal(t, StatusOffSite, got["Mario"])
		assert.Equal(t, StatusFree, got["Lucia"])
	})

	t.Run("name in description or location matches too", func(t *testing.T) {
		events := []Event{
			{Summary: "Smart working", Description: "lucia in collegamento"},
			{Summary: "Riunione in ufficio", Location: "con Anna"},
		}

		got := MapStaff(events, staff, c, nil)
		assert.Equal(t, StatusRemote, got["Lucia"])
		assert.Equal(t, StatusInOffice, got["Anna"])
	})

	t.Run("attendee display name and email match", func(t *testing.T) {
		events := []Event{{
			Summary: "Smart working",
			Attendees: []Attendee{
				{DisplayName: "Mario Bianchi", Email: "m.bianchi@e-labo.it"},
				{Email: "lucia.verdi@e-labo.it"},
			},
		}}

		got := MapStaff(events, staff, c, nil)
		assert.Equal(t, StatusRemote, got["Mario"])
		assert.Equal(t, StatusRemote, got["Lucia"])
	})

	t.Run("last matching event wins", func(t *testing.T) {
		events := []Event{
			{Summary: "Sopralluogo Mario"},
			{Summary: "Mario in ufficio"},
		}

		got := MapStaff(events, staff, c, nil)
		assert.Equal(t, StatusInOffice, got["Mario"])
	})

	t.Run("empty roster yields empty map", func(t *testing.T) {
		got := MapStaff([]Event{{Summary: "Sopralluogo"}}, nil, c, nil)
		assert.Empty(t, got)
	})
}

func TestNameMatchers(t *testing.T) {
	t.Run("substring matcher is unanchored", func(t *testing.T) {
		assert.True(t, SubstringMatcher("Anna", "parliamo di Annamaria"))
		assert.True(t, SubstringMatcher("mario", "Riunione con MARIO"))
		assert.False(t, SubstringMatcher("", "qualsiasi testo"))
	})

	t.Run("token matcher requires a whole token", func(t *testing.T) {
		assert.False(t, TokenMatcher("Anna", "parliamo di Annamaria"))
		assert.True(t, TokenMatcher("Anna", "riunione con Anna domani"))
	})

	t.Run("mapper honors a custom matcher", func(t *testing.T) {
		c := defaultClassifier()
		events := []Event{{Summary: "Sopralluogo con Annamaria"}}

		loose := MapStaff(events, []string{"Anna"}, c, SubstringMatcher)
		assert.Equal(t, StatusOffSite, loose["Anna"])

		strict := MapStaff(events, []string{"Anna"}, c, TokenMatcher)
		assert.Equal(t, StatusFree, strict["Anna"])
	})
}
