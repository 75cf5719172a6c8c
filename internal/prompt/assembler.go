package prompt

import "fmt"

// DefaultHistoryWindow is how many prior turns are kept for prompt
// construction; older turns are dropped, not summarized.
const DefaultHistoryWindow = 10

// Turn is one prior message of the conversation as supplied by the caller.
type Turn struct {
	Message string `json:"message"`
}

// Assemble produces the ordered segment sequence for the generation call:
// the instruction block, then the last `window` history turns in their
// original order, then the new user message. Segment count is always
// 1 + min(window, len(history)) + 1.
func Assemble(instruction string, history []Turn, userMsg string, window int) []string {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	if len(history) > window {
		history = history[len(history)-window:]
	}

	segments := make([]string, 0, len(history)+2)
	segments = append(segments, instruction+"\n")
	for _, turn := range history {
		segments = append(segments, fmt.Sprintf("Utente: %s\n", turn.Message))
	}
	segments = append(segments, fmt.Sprintf("Utente: %s\n", userMsg))

	return segments
}
