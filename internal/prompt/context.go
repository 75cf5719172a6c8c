// Package prompt assembles the ordered text segments handed to the
// generation call: the composed system instruction followed by the windowed
// conversation history and the new user message.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/elabo-srl/assistant/internal/presence"
)

// templateDocument is the on-disk prompt template (prompt.json).
type templateDocument struct {
	SystemInstruction string `json:"system_instruction"`
}

// Builder composes the static instruction template with the request-scoped
// context: current date, staff presence table and course listing.
type Builder struct {
	templatePath string
}

func NewBuilder(templatePath string) *Builder {
	return &Builder{templatePath: templatePath}
}

// Build returns the full system instruction. Optional context degrades: an
// empty presence map yields the no-information sentinel and an empty course
// listing yields an empty section. Only a missing or unreadable template is
// an error - without it there is nothing to anchor the assistant's behavior.
func (b *Builder) Build(now time.Time, staff []string, presences map[string]presence.Status, coursesText string) (string, error) {
	instruction, err := b.loadTemplate()
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	out.WriteString(instruction)

	out.WriteString(fmt.Sprintf(
		"\n\n📅 Oggi è il %s. Quando rispondi, considera questa data come riferimento.",
		now.Format("02/01/2006"),
	))

	out.WriteString("\n\n📌 Presenze oggi:\n")
	out.WriteString(formatPresences(staff, presences))

	out.WriteString("\n\n📌 Calendario corsi aggiornato:\n")
	out.WriteString(coursesText)

	return out.String(), nil
}

func (b *Builder) loadTemplate() (string, error) {
	data, err := os.ReadFile(b.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt template: %w", err)
	}

	var doc templateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return doc.SystemInstruction, nil
}

// formatPresences renders one line per roster name in roster order.
func formatPresences(staff []string, presences map[string]presence.Status) string {
	var lines []string
	for _, name := range staff {
		status, ok := presences[name]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s → %s", name, status))
	}

	if len(lines) == 0 {
		return "Nessuna informazione sulle presenze oggi."
	}
	return strings.Join(lines, "\n")
}
