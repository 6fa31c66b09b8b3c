package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sahiti3636/finwise-ai/models"
)

func testClient(server *httptest.Server) *Client {
	c := NewClient("test-key")
	c.baseURL = server.URL
	c.httpClient = server.Client()
	return c
}

func generationResponse(text string) string {
	return `{"candidates": [{"content": {"parts": [{"text": "` + text + `"}]}}]}`
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-1.5-flash:generateContent" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query")
		}
		w.Write([]byte(generationResponse("Save more each month.")))
	}))
	defer server.Close()

	got, err := testClient(server).Generate(context.Background(), "advise me")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "Save more each month." {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": []}`))
			},
		},
		{
			name: "blank text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(generationResponse("   ")))
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := testClient(server).Generate(context.Background(), "prompt")
			if !errors.Is(err, ErrGeneration) {
				t.Errorf("expected ErrGeneration, got %v", err)
			}
		})
	}
}

func TestChatWrapsGeneration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(generationResponse("Consider ELSS funds for your tax needs.")))
	}))
	defer server.Close()

	p := &models.Profile{Income: 800000}
	reply, err := testClient(server).Chat(context.Background(), "How do I save tax?", p)
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if reply.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", reply.Confidence)
	}
	if reply.Suggestions[0] != "What tax deductions can I claim?" {
		t.Errorf("expected tax suggestions, got %v", reply.Suggestions)
	}
}

func TestTaxAdviceParsesStructuredText(t *testing.T) {
	body := `{\"recommendations\": [{\"title\": \"NPS\", \"potential_saving\": 15000}], \"summary\": {\"total_potential_savings\": 15000, \"optimization_score\": 70}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(generationResponse(body)))
	}))
	defer server.Close()

	plan, err := testClient(server).TaxAdvice(context.Background(), &models.Profile{})
	if err != nil {
		t.Fatalf("TaxAdvice() error: %v", err)
	}
	if len(plan.Recommendations) != 1 || plan.Recommendations[0].Title != "NPS" {
		t.Errorf("unexpected plan: %+v", plan)
	}
}
