package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floria-be/internal/constant"
	"floria-be/internal/repository/memory"
	"floria-be/pkg/events"
	"floria-be/pkg/llm"
	"floria-be/pkg/retrieval"
	"floria-be/pkg/store"
	"floria-be/pkg/tools"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type stubProvider struct {
	reply string
	err   error
	calls int
	last  []llm.Message
}

func (s *stubProvider) Chat(_ context.Context, history []llm.Message) (string, error) {
	s.calls++
	s.last = history
	return s.reply, s.err
}

func plantPage(body string) string {
	return fmt.Sprintf("<html><body><main><p>%s</p></main></body></html>",
		strings.Repeat(body+" ", 60))
}

// newService wires a full service over an httptest scrape target. handler nil
// means every URL answers 404.
func newService(t *testing.T, provider llm.LLMProvider, handler http.HandlerFunc) (IChatService, *memory.SessionRepository) {
	t.Helper()
	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sources := []retrieval.Source{
		{Name: "Conservation Nature", Patterns: []string{server.URL + "/fiche/" + retrieval.SlugPlaceholder}},
	}
	bus := events.NewBus(nopLogger{})
	t.Cleanup(func() { bus.Close() })

	engine := retrieval.NewEngine(retrieval.Config{}, sources, nopLogger{}, bus)
	registry := tools.NewRegistry()
	registry.Register(retrieval.NewTool(engine))

	sessions := memory.NewSessionRepository()
	return NewChatService(sessions, provider, registry, bus, nopLogger{}, 2), sessions
}

func TestHandleMessageGreeting(t *testing.T) {
	provider := &stubProvider{reply: "should not be called"}
	svc, _ := newService(t, provider, nil)

	res, err := svc.HandleMessage(context.Background(), "s1", "Bonjour")
	require.NoError(t, err)

	assert.Equal(t, constant.GreetingReply, res.Reply)
	assert.Empty(t, res.ToolsUsed)
	assert.Empty(t, res.Sources)
	assert.Zero(t, provider.calls, "greeting must not reach the model")
}

func TestHandleMessageDiagnosticWithRetrieval(t *testing.T) {
	provider := &stubProvider{reply: "Les feuilles jaunes viennent souvent d'un excès d'eau."}
	svc, _ := newService(t, provider, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fiche/monstera-deliciosa" {
			fmt.Fprint(w, plantPage("Le monstera apprécie une lumière vive sans soleil direct."))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	res, err := svc.HandleMessage(context.Background(), "s1", "Ma monstera a des feuilles jaunes")
	require.NoError(t, err)

	assert.NotEmpty(t, res.Reply)
	require.Len(t, res.ToolsUsed, 1)
	assert.Equal(t, retrieval.ToolName, res.ToolsUsed[0])
	require.Len(t, res.Sources, 1)
	assert.Equal(t, "Conservation Nature", res.Sources[0].Title)

	// The model must see the retrieved extract as a system turn.
	var sawContext bool
	for _, m := range provider.last {
		if m.Role == store.RoleSystem && strings.Contains(m.Content, constant.SourceContextHeader[:20]) {
			sawContext = true
		}
	}
	assert.True(t, sawContext)
}

func TestHandleMessageModelFailureFallsBack(t *testing.T) {
	provider := &stubProvider{err: errors.New("context deadline exceeded")}
	svc, sessions := newService(t, provider, nil)

	res, err := svc.HandleMessage(context.Background(), "s1", "Ma monstera a des feuilles jaunes")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Reply, constant.FallbackReply))

	// The assistant turn is still appended even though the model failed.
	session, found := sessions.Get("s1")
	require.True(t, found)
	last := session.Turns[len(session.Turns)-1]
	assert.Equal(t, store.RoleAssistant, last.Role)
	assert.Equal(t, res.Reply, last.Content)
}

func TestHandleMessageAllSourcesDown(t *testing.T) {
	provider := &stubProvider{reply: "Réponse sans sources."}
	svc, sessions := newService(t, provider, nil)

	res, err := svc.HandleMessage(context.Background(), "s1", "Comment arroser mon monstera ?")
	require.NoError(t, err)

	assert.Empty(t, res.Sources)
	assert.NotEmpty(t, res.Reply)

	// The tool ran and answered, just with nothing; an empty success still
	// records the tool name, the failure marker is for dispatch errors.
	assert.Equal(t, []string{retrieval.ToolName}, res.ToolsUsed)

	// No source-context system turn when nothing was retrieved.
	session, _ := sessions.Get("s1")
	for _, turn := range session.Turns {
		assert.NotContains(t, turn.Content, constant.SourceContextHeader[:20])
	}
}

func TestHandleMessageSlotsPersistAcrossTurns(t *testing.T) {
	provider := &stubProvider{reply: "D'accord."}
	svc, sessions := newService(t, provider, nil)

	_, err := svc.HandleMessage(context.Background(), "s1", "Elle est en lumière indirecte")
	require.NoError(t, err)
	_, err = svc.HandleMessage(context.Background(), "s1", "Merci pour l'info")
	require.NoError(t, err)

	session, found := sessions.Get("s1")
	require.True(t, found)
	assert.Equal(t, "indirecte", session.Slots.GetString(store.SlotExposition))
}

func TestHandleMessageAppendsMissingQuestions(t *testing.T) {
	provider := &stubProvider{reply: "Voyons cela."}
	svc, _ := newService(t, provider, nil)

	res, err := svc.HandleMessage(context.Background(), "s1", "Ma plante a des taches brunes")
	require.NoError(t, err)

	assert.Contains(t, res.Reply, constant.MissingQuestionsHeader)
	assert.Contains(t, res.Reply, "Quelle est la plante")
}

func TestHandleMessageToolDispatchFailure(t *testing.T) {
	provider := &stubProvider{reply: "Je réponds quand même."}

	bus := events.NewBus(nopLogger{})
	t.Cleanup(func() { bus.Close() })

	registry := tools.NewRegistry()
	registry.Register(&tools.Tool{
		Name: retrieval.ToolName,
		Run: func(context.Context, map[string]interface{}) (interface{}, error) {
			return nil, errors.New("scrape backend down")
		},
	})

	sessions := memory.NewSessionRepository()
	svc := NewChatService(sessions, provider, registry, bus, nopLogger{}, 2)

	res, err := svc.HandleMessage(context.Background(), "s1", "Ma monstera a des feuilles jaunes")
	require.NoError(t, err)

	assert.Equal(t, []string{constant.RetrievalFailedMarker}, res.ToolsUsed)
	assert.Empty(t, res.Sources)
	assert.NotEmpty(t, res.Reply)
}

func TestHistoryConcurrentWithMessages(t *testing.T) {
	provider := &stubProvider{reply: "D'accord."}
	svc, _ := newService(t, provider, nil)

	// Reads on one goroutine while another appends turns on the same key;
	// both paths must hold the per-session lock (run with -race).
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 30; i++ {
			svc.HandleMessage(context.Background(), "s1", "Bonjour")
		}
	}()
	for i := 0; i < 100; i++ {
		svc.History("s1")
	}
	wg.Wait()

	turns, ok := svc.History("s1")
	require.True(t, ok)
	assert.Len(t, turns, 1+30*2)
}

func TestHistory(t *testing.T) {
	provider := &stubProvider{reply: "Bonjour à vous."}
	svc, _ := newService(t, provider, nil)

	_, ok := svc.History("missing")
	assert.False(t, ok)

	_, err := svc.HandleMessage(context.Background(), "s1", "Bonjour")
	require.NoError(t, err)

	turns, ok := svc.History("s1")
	require.True(t, ok)
	// system prompt + user + assistant
	require.Len(t, turns, 3)
	assert.Equal(t, store.RoleSystem, turns[0].Role)
	assert.Equal(t, "Bonjour", turns[1].Content)
}
