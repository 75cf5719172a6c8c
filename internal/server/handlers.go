package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/elabo-srl/assistant/internal/presence"
	"github.com/elabo-srl/assistant/internal/prompt"
)

type chatRequest struct {
	Msg     string        `json:"msg"`
	History []prompt.Turn `json:"history"`
}

// Health Check

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Pong")
}

// handleRoot dispatches the chat endpoint. Unmatched method/path combinations
// return 200 with a usage body: the deployed widget was built against a
// function host that never returned 404, so that behavior is kept until the
// frontend is updated.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		s.handleChat(w, r)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"info": "Usa POST con {'msg': '...'} e 'history': [...] per parlare con l'assistente.",
	})
}

// handleChat runs the prompt-assembly pipeline and calls the generation
// service. A calendar failure degrades the presence section; any other
// failure surfaces as a 500 with the error message only.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.apiKey != "" && r.Header.Get("x-api-key") != s.apiKey {
		respondError(w, http.StatusUnauthorized, "chiave API non valida")
		return
	}

	req := s.decodeChatRequest(r)

	userMsg := strings.TrimSpace(req.Msg)
	if userMsg == "" {
		respondError(w, http.StatusBadRequest, "Campo 'msg' mancante o vuoto")
		return
	}

	ctx := r.Context()

	// Side path: operator-request intent fires an email, best-effort.
	if s.notifyService.HandleMessage(ctx, userMsg) {
		fmt.Println("Operator request detected")
	}

	// Presence context degrades to an empty event list when the calendar is
	// unconfigured or unreachable; the request proceeds either way.
	var events []presence.Event
	if s.events != nil {
		todayEvents, err := s.events.ListTodayEvents(ctx)
		if err != nil {
			fmt.Printf("Error reading Google Calendar: %v\n", err)
		} else {
			events = todayEvents
		}
	}
	presences := presence.MapStaff(events, s.staff, s.classifier, nil)

	coursesText := s.coursesLoader.Listing()

	instruction, err := s.promptBuilder.Build(time.Now(), s.staff, presences, coursesText)
	if err != nil {
		fmt.Printf("Error building instruction: %v\n", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	segments := prompt.Assemble(instruction, req.History, userMsg, s.historySize)

	reply, err := s.generator.GenerateContent(ctx, segments)
	if err != nil {
		fmt.Printf("Error generating reply: %v\n", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// decodeChatRequest parses the request body, tolerating an empty or malformed
// one: validation of the msg field decides the response, not parse trouble.
func (s *Server) decodeChatRequest(r *http.Request) chatRequest {
	var req chatRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		fmt.Printf("Error reading request body: %v\n", err)
		return req
	}
	if len(body) == 0 {
		return req
	}

	if err := json.Unmarshal(body, &req); err != nil {
		fmt.Printf("Request body is not valid JSON: %v\n", err)
	}
	return req
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("Error encoding JSON response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
