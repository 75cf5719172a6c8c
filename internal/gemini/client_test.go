package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name           string
		cfg            Config
		expectedModel  string
		expectedTemp   float64
		expectedConfig bool
	}{
		{
			name:           "with all parameters",
			cfg:            Config{APIKey: "test-key", Model: "gemini-1.5-pro", Temperature: 0.2, MaxOutputTokens: 512, TopK: 10, TopP: 0.5},
			expectedModel:  "gemini-1.5-pro",
			expectedTemp:   0.2,
			expectedConfig: true,
		},
		{
			name:           "empty model uses default",
			cfg:            Config{APIKey: "test-key"},
			expectedModel:  defaultModel,
			expectedTemp:   0.7,
			expectedConfig: true,
		},
		{
			name:           "empty api key",
			cfg:            Config{},
			expectedModel:  defaultModel,
			expectedTemp:   0.7,
			expectedConfig: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.cfg)

			require.NotNil(t, client)
			assert.Equal(t, tt.expectedModel, client.model)
			assert.Equal(t, tt.expectedTemp, client.generation.Temperature)
			assert.Equal(t, tt.expectedConfig, client.IsConfigured())
		})
	}
}

func TestGenerateContent(t *testing.T) {
	t.Run("success joins candidate parts", func(t *testing.T) {
		var captured generateRequest
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			json.NewEncoder(w).Encode(map[string]interface{}{
				"candidates": []map[string]interface{}{
					{"content": map[string]interface{}{
						"parts": []map[string]string{{"text": "Ciao, "}, {"text": "come posso aiutarti?"}},
					}},
				},
			})
		}))
		defer ts.Close()

		client := NewClient(Config{APIKey: "test-key"})
		client.baseURL = ts.URL

		reply, err := client.GenerateContent(context.Background(), []string{"istruzioni\n", "Utente: ciao\n"})
		require.NoError(t, err)
		assert.Equal(t, "Ciao, come posso aiutarti?", reply)

		require.Len(t, captured.Contents, 1)
		require.Len(t, captured.Contents[0].Parts, 2)
		assert.Equal(t, "istruzioni\n", captured.Contents[0].Parts[0].Text)
		assert.Equal(t, "Utente: ciao\n", captured.Contents[0].Parts[1].Text)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","message":"quota"}}`, http.StatusTooManyRequests)
		}))
		defer ts.Close()

		client := NewClient(Config{APIKey: "test-key"})
		client.baseURL = ts.URL

		_, err := client.GenerateContent(context.Background(), []string{"x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("error envelope in 200 body is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]interface{}{"code": 400, "status": "INVALID_ARGUMENT", "message": "bad request"},
			})
		}))
		defer ts.Close()

		client := NewClient(Config{APIKey: "test-key"})
		client.baseURL = ts.URL

		_, err := client.GenerateContent(context.Background(), []string{"x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "INVALID_ARGUMENT")
	})

	t.Run("empty candidates is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
		}))
		defer ts.Close()

		client := NewClient(Config{APIKey: "test-key"})
		client.baseURL = ts.URL

		_, err := client.GenerateContent(context.Background(), []string{"x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty response")
	})
}
