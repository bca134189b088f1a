package service

import (
	"context"
	"strings"

	"floria-be/internal/constant"
	"floria-be/internal/dto"
	"floria-be/internal/pkg/logger"
	"floria-be/internal/repository/memory"
	"floria-be/pkg/events"
	"floria-be/pkg/llm"
	"floria-be/pkg/nlu"
	"floria-be/pkg/retrieval"
	"floria-be/pkg/store"
	"floria-be/pkg/tools"
)

// IChatService is the dialogue orchestration engine: slot filling, retrieval
// and reply composition for one message at a time.
type IChatService interface {
	HandleMessage(ctx context.Context, sessionID, message string) (*dto.ChatResult, error)
	History(sessionID string) ([]store.Turn, bool)
}

type chatService struct {
	sessions    *memory.SessionRepository
	llmProvider llm.LLMProvider
	registry    *tools.Registry
	bus         *events.Bus
	log         logger.ILogger
	maxSources  int
}

func NewChatService(
	sessions *memory.SessionRepository,
	llmProvider llm.LLMProvider,
	registry *tools.Registry,
	bus *events.Bus,
	log logger.ILogger,
	maxSources int,
) IChatService {
	if maxSources < 1 {
		maxSources = 2
	}
	return &chatService{
		sessions:    sessions,
		llmProvider: llmProvider,
		registry:    registry,
		bus:         bus,
		log:         log,
		maxSources:  maxSources,
	}
}

// HandleMessage runs one full turn: extraction, state merge, conditional
// retrieval, question planning and reply composition. It always produces a
// reply; every external failure degrades to a documented fallback. The
// session is locked for the whole span so concurrent requests on the same
// key serialize.
func (cs *chatService) HandleMessage(ctx context.Context, sessionID, message string) (*dto.ChatResult, error) {
	unlock := cs.sessions.Lock(sessionID)
	defer unlock()

	session := cs.sessions.GetOrCreate(sessionID, constant.SystemPrompt)

	intent := nlu.ClassifyIntent(message)
	cs.bus.Publish(events.KindIntentClassified, sessionID, map[string]interface{}{"intent": string(intent)})

	toolsUsed := []string{}
	sources := []dto.SourceLinkDTO{}

	// Update slots from this message. Plant extraction is separate because
	// the dictionary path returns a ready slug.
	session.Slots.Merge(nlu.ExtractSlots(message))
	if plant := nlu.ExtractPlant(message); plant != "" {
		session.Slots[store.SlotPlant] = plant
	}

	// Bare greeting: fixed short reply, no retrieval, no model.
	if nlu.IsGreeting(message) && !nlu.LooksLikePlantTopic(message) {
		cs.bus.Publish(events.KindGreeting, sessionID, nil)
		session.Append(store.RoleUser, message)
		session.Append(store.RoleAssistant, constant.GreetingReply)
		cs.sessions.Save(session)
		return &dto.ChatResult{Reply: constant.GreetingReply, ToolsUsed: toolsUsed, Sources: sources}, nil
	}

	// Retrieval runs when the plant is known and the message is either
	// plant-flavored or a diagnostic (those usually need grounding).
	var toolSummary string
	if session.Slots.Has(store.SlotPlant) && (nlu.LooksLikePlantTopic(message) || intent == nlu.IntentDiagnostic) {
		toolSummary, toolsUsed, sources = cs.retrieveSources(ctx, sessionID, session.Slots.GetString(store.SlotPlant), toolsUsed, sources)
	}

	// Retrieved extracts go in as a system turn right before the user turn,
	// capped so the context stays short.
	if toolSummary != "" {
		session.Append(store.RoleSystem, constant.SourceContextHeader+truncate(toolSummary, constant.MaxContextChars))
	}

	// Known facts go in as a second short system turn to suppress
	// redundant questioning.
	if state := knownSlotsLine(session.Slots); state != "" {
		session.Append(store.RoleSystem, constant.KnownSlotsHeader+state)
	}

	session.Append(store.RoleUser, message)

	missingQuestions := nlu.MissingQuestions(intent, session.Slots)

	reply := cs.composeReply(ctx, sessionID, session, missingQuestions, toolSummary)
	session.Append(store.RoleAssistant, reply)
	cs.sessions.Save(session)

	return &dto.ChatResult{Reply: reply, ToolsUsed: toolsUsed, Sources: sources}, nil
}

// History returns the transcript projection for a session. It takes the
// same per-session lock as HandleMessage so a read never observes a turn
// slice mid-append.
func (cs *chatService) History(sessionID string) ([]store.Turn, bool) {
	unlock := cs.sessions.Lock(sessionID)
	defer unlock()

	session, found := cs.sessions.Get(sessionID)
	if !found {
		return nil, false
	}
	return session.History(), true
}

// retrieveSources dispatches the retrieval tool through the registry and
// maps its envelope back. A dispatch failure or empty result records the
// failure marker and the conversation proceeds without grounding.
func (cs *chatService) retrieveSources(
	ctx context.Context,
	sessionID, plant string,
	toolsUsed []string,
	sources []dto.SourceLinkDTO,
) (string, []string, []dto.SourceLinkDTO) {
	res := cs.registry.Execute(ctx, retrieval.ToolName, map[string]interface{}{
		"query": plant,
		"limit": cs.maxSources,
	})

	if res.Status != tools.StatusSuccess {
		cs.bus.Publish(events.KindToolFailed, sessionID, map[string]interface{}{"tool": res.Tool, "message": res.Message})
		return "", append(toolsUsed, constant.RetrievalFailedMarker), sources
	}

	result, ok := res.Result.(*retrieval.Result)
	if !ok {
		cs.log.Error("chat", "Unexpected retrieval tool payload", map[string]interface{}{"tool": res.Tool})
		return "", append(toolsUsed, constant.RetrievalFailedMarker), sources
	}

	toolsUsed = append(toolsUsed, res.Tool)
	for _, s := range result.Sources {
		title := s.SourceName
		if title == "" {
			title = s.Title
		}
		if title == "" {
			title = plant
		}
		sources = append(sources, dto.SourceLinkDTO{Title: title, URL: s.URL})
	}
	return result.Summary, toolsUsed, sources
}

// composeReply calls the model with the full ordered history and appends the
// clarifying questions; on any model failure it falls back to the canned
// reply so the session always gains a matching assistant turn.
func (cs *chatService) composeReply(
	ctx context.Context,
	sessionID string,
	session *store.Session,
	missingQuestions []string,
	toolSummary string,
) string {
	history := make([]llm.Message, 0, len(session.Turns))
	for _, turn := range session.Turns {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}

	reply, err := cs.llmProvider.Chat(ctx, history)
	if err != nil {
		cs.bus.Publish(events.KindModelFallback, sessionID, map[string]interface{}{"error": err.Error()})
		cs.log.Warn("chat", "Model call failed, using fallback reply", map[string]interface{}{"error": err.Error()})

		fallback := constant.FallbackReply
		if toolSummary != "" {
			fallback += constant.FallbackSourcesHeader + toolSummary
		}
		return fallback
	}

	reply = strings.TrimSpace(reply)
	if len(missingQuestions) > 0 {
		var sb strings.Builder
		sb.WriteString(reply)
		sb.WriteString(constant.MissingQuestionsHeader)
		for i, q := range missingQuestions {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("- ")
			sb.WriteString(q)
		}
		reply = sb.String()
	}
	return reply
}

// knownSlotsLine renders the accumulated facts as a compact one-liner.
func knownSlotsLine(slots store.SlotMap) string {
	var parts []string
	if v := slots.GetString(store.SlotPlant); v != "" {
		parts = append(parts, "Plante="+v)
	}
	if v := slots.GetString(store.SlotExposition); v != "" {
		parts = append(parts, "Exposition="+v)
	}
	if v := slots.GetString(store.SlotArrosage); v != "" {
		parts = append(parts, "Arrosage="+v)
	}
	if v := slots.GetStrings(store.SlotSymptomes); len(v) > 0 {
		parts = append(parts, "Symptomes="+strings.Join(v, ", "))
	}
	return strings.Join(parts, " | ")
}

func truncate(s string, max int) string {
	if runes := []rune(s); len(runes) > max {
		return string(runes[:max]) + "…"
	}
	return s
}
