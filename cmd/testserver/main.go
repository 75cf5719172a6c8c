// testserver runs the chat endpoint with a stubbed generation service so the
// web widget can be developed without burning Gemini quota.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/elabo-srl/assistant/internal/config"
	"github.com/elabo-srl/assistant/internal/courses"
	"github.com/elabo-srl/assistant/internal/notify"
	"github.com/elabo-srl/assistant/internal/presence"
	"github.com/elabo-srl/assistant/internal/prompt"
	"github.com/elabo-srl/assistant/internal/server"
)

type echoGenerator struct{}

// GenerateContent echoes the final user segment plus a segment count, which
// is enough to eyeball prompt assembly from the widget.
func (echoGenerator) GenerateContent(_ context.Context, segments []string) (string, error) {
	last := ""
	if len(segments) > 0 {
		last = strings.TrimSpace(segments[len(segments)-1])
	}
	return fmt.Sprintf("[testserver] %d segmenti, ultimo: %q", len(segments), last), nil
}

func main() {
	cfg := config.LoadFromEnv()

	srv := server.New(server.ServerConfig{
		Port:        cfg.HTTPPort,
		Staff:       cfg.StaffNames,
		HistorySize: cfg.HistorySize,
		CoursesLoader: courses.NewLoader(cfg.CoursesFile, courses.Columns{
			Title: cfg.TitleColumn,
			Start: cfg.StartColumn,
			City:  cfg.CityColumn,
		}),
		PromptBuilder: prompt.NewBuilder(cfg.PromptFile),
		Classifier:    presence.NewClassifier(cfg.OffsiteKeywords, cfg.RemoteKeywords, cfg.OfficeKeywords, cfg.OfficeSite),
		Generator:     echoGenerator{},
		NotifyService: notify.NewService(nil, notify.PhraseIntent(cfg.OperatorPhrase)),
	})

	fmt.Println("Test server: generation stubbed, calendar and email disabled")
	if err := srv.Start(); err != nil {
		fmt.Printf("server error: %v\n", err)
	}
}
