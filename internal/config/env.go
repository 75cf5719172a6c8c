package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required
	GeminiAPIKey string

	// Google Calendar (optional - presence section degrades when unset)
	GoogleCredentialsJSON string
	GoogleCalendarID      string
	CalendarTimezone      string
	StaffNames            []string
	OfficeSite            string

	// Presence keyword sets (ordered: off-site checked before remote before office)
	OffsiteKeywords []string
	RemoteKeywords  []string
	OfficeKeywords  []string

	// Email side path (optional)
	ResendAPIKey   string
	EmailFrom      string
	EmailTo        string
	OperatorPhrase string

	// Optional with defaults
	HTTPPort        int
	APIKey          string
	GeminiModel     string
	Temperature     float64
	MaxOutputTokens int
	TopK            int
	TopP            float64
	PromptFile      string
	CoursesFile     string
	TitleColumn     string
	StartColumn     string
	CityColumn      string
	HistorySize     int
}

func LoadFromEnv() *Config {
	cfg := &Config{
		// Required
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		// Google Calendar
		GoogleCredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS"),
		GoogleCalendarID:      os.Getenv("GOOGLE_CALENDAR_ID"),
		CalendarTimezone:      getEnvOrDefault("GOOGLE_CALENDAR_TZ", "Europe/Rome"),
		StaffNames:            getEnvAsJSONList("STAFF_NAMES"),
		OfficeSite:            getEnvOrDefault("ELABO_OFFICE_SITE", "arzignano"),

		OffsiteKeywords: getEnvAsListOrDefault("ELABO_OFFSITE_KEYWORDS", []string{"sopralluogo", "cantiere", "cliente", "visit"}),
		RemoteKeywords:  getEnvAsListOrDefault("ELABO_REMOTE_KEYWORDS", []string{"smart", "remoto", "da casa"}),
		OfficeKeywords:  getEnvAsListOrDefault("ELABO_OFFICE_KEYWORDS", []string{"ufficio", "sede"}),

		// Email side path
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		EmailFrom:      getEnvOrDefault("ELABO_EMAIL_FROM", "assistente@e-labo.it"),
		EmailTo:        os.Getenv("ELABO_EMAIL_TO"),
		OperatorPhrase: getEnvOrDefault("ELABO_OPERATOR_PHRASE", "parlare con un operatore"),

		// Optional with defaults
		HTTPPort:        getEnvAsIntOrDefault("ELABO_HTTP_PORT", 8080),
		APIKey:          os.Getenv("ELABO_API_KEY"),
		GeminiModel:     getEnvOrDefault("ELABO_GEMINI_MODEL", "gemini-2.0-flash-thinking-exp-01-21"),
		Temperature:     getEnvAsFloatOrDefault("ELABO_GEMINI_TEMPERATURE", 0.7),
		MaxOutputTokens: getEnvAsIntOrDefault("ELABO_GEMINI_MAX_TOKENS", 4096),
		TopK:            getEnvAsIntOrDefault("ELABO_GEMINI_TOP_K", 64),
		TopP:            getEnvAsFloatOrDefault("ELABO_GEMINI_TOP_P", 0.95),
		PromptFile:      getEnvOrDefault("ELABO_PROMPT_FILE", "./prompt.json"),
		CoursesFile:     getEnvOrDefault("ELABO_COURSES_FILE", "./corsi_e_labo.csv"),
		TitleColumn:     getEnvOrDefault("ELABO_COURSES_TITLE_COLUMN", "Title"),
		StartColumn:     getEnvOrDefault("ELABO_COURSES_START_COLUMN", "Start Date"),
		CityColumn:      getEnvOrDefault("ELABO_COURSES_CITY_COLUMN", "City"),
		HistorySize:     getEnvAsIntOrDefault("ELABO_HISTORY_SIZE", 10),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault parses a comma-separated list, trimming whitespace around items.
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// getEnvAsJSONList parses a JSON-encoded string array (e.g. STAFF_NAMES='["Mario","Lucia"]').
// Malformed values are treated as empty rather than failing startup.
func getEnvAsJSONList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s is not a valid JSON list: %v\n", key, err)
		return nil
	}
	return items
}
