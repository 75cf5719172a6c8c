package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elabo-srl/assistant/internal/config"
	"github.com/elabo-srl/assistant/internal/courses"
	"github.com/elabo-srl/assistant/internal/gcal"
	"github.com/elabo-srl/assistant/internal/gemini"
	"github.com/elabo-srl/assistant/internal/notify"
	"github.com/elabo-srl/assistant/internal/presence"
	"github.com/elabo-srl/assistant/internal/prompt"
	"github.com/elabo-srl/assistant/internal/server"
)

func main() {
	cfg := config.LoadFromEnv()

	if cfg.GeminiAPIKey == "" {
		fatal("configuration", fmt.Errorf("GEMINI_API_KEY not set"))
	}

	generator := gemini.NewClient(gemini.Config{
		APIKey:          cfg.GeminiAPIKey,
		Model:           cfg.GeminiModel,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
		TopK:            cfg.TopK,
		TopP:            cfg.TopP,
	})

	srv := server.New(server.ServerConfig{
		Port:          cfg.HTTPPort,
		APIKey:        cfg.APIKey,
		Staff:         cfg.StaffNames,
		HistorySize:   cfg.HistorySize,
		CoursesLoader: courses.NewLoader(cfg.CoursesFile, courses.Columns{
			Title: cfg.TitleColumn,
			Start: cfg.StartColumn,
			City:  cfg.CityColumn,
		}),
		PromptBuilder: prompt.NewBuilder(cfg.PromptFile),
		Classifier:    presence.NewClassifier(cfg.OffsiteKeywords, cfg.RemoteKeywords, cfg.OfficeKeywords, cfg.OfficeSite),
		Generator:     generator,
		Events:        initCalendar(cfg),
		NotifyService: initNotifyService(cfg),
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()

	waitForShutdown(srv)
}

func initCalendar(cfg *config.Config) server.EventSource {
	if cfg.GoogleCredentialsJSON == "" || cfg.GoogleCalendarID == "" {
		fmt.Println("Warning: GOOGLE_CREDENTIALS or GOOGLE_CALENDAR_ID not set, presence detection disabled")
		return nil
	}

	client, err := gcal.NewClient(context.Background(), []byte(cfg.GoogleCredentialsJSON), cfg.GoogleCalendarID, cfg.CalendarTimezone)
	if err != nil {
		fmt.Printf("Warning: Failed to create calendar client: %v\n", err)
		return nil
	}

	fmt.Println("Google Calendar client initialized")
	return client
}

func initNotifyService(cfg *config.Config) *notify.Service {
	var emailNotifier notify.Notifier
	if cfg.ResendAPIKey != "" {
		notifier := notify.NewResendNotifier(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailTo)
		if notifier != nil && notifier.IsConfigured() {
			emailNotifier = notifier
			fmt.Println("Email notification service configured (Resend)")
		}
	}
	if emailNotifier == nil {
		fmt.Println("Warning: RESEND_API_KEY or ELABO_EMAIL_TO not set, operator emails disabled")
	}

	return notify.NewService(emailNotifier, notify.PhraseIntent(cfg.OperatorPhrase))
}

func fatal(context string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}

func waitForShutdown(srv *server.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.Shutdown(ctx)
}
