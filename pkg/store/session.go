package store

// Turn roles, in the wire format expected by the model backend.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single message of a conversation. Immutable once appended;
// the slice order is the exact sequence presented to the model.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Slot names accumulated across a conversation.
const (
	SlotPlant        = "plant"
	SlotExposition   = "exposition"
	SlotArrosage     = "arrosage"
	SlotArrosageNote = "arrosage_note"
	SlotSymptomes    = "symptomes"
)

// SlotMap holds the facts collected so far. Values are strings, except
// SlotSymptomes which is a []string.
type SlotMap map[string]any

// Merge applies last-message-wins per key. Keys absent from extracted are
// left untouched; a slot is never cleared, only overwritten.
func (m SlotMap) Merge(extracted SlotMap) {
	for k, v := range extracted {
		m[k] = v
	}
}

// Has reports whether the slot is set to a non-empty value.
func (m SlotMap) Has(key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case []string:
		return len(t) > 0
	default:
		return v != nil
	}
}

// GetString returns the slot as a string, or "" when unset or not a string.
func (m SlotMap) GetString(key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// GetStrings returns the slot as a string list, or nil.
func (m SlotMap) GetStrings(key string) []string {
	if l, ok := m[key].([]string); ok {
		return l
	}
	return nil
}

// Session is the active conversation state kept in memory. Created on the
// first message for a new key and mutated by every subsequent one; it lives
// for the process lifetime.
type Session struct {
	ID    string  `json:"id"`
	Turns []Turn  `json:"turns"`
	Slots SlotMap `json:"slots"`
}

// NewSession seeds a session with the system prompt as turn zero.
func NewSession(id, systemPrompt string) *Session {
	return &Session{
		ID:    id,
		Turns: []Turn{{Role: RoleSystem, Content: systemPrompt}},
		Slots: SlotMap{},
	}
}

// Append adds a turn at the end of the conversation.
func (s *Session) Append(role, content string) {
	s.Turns = append(s.Turns, Turn{Role: role, Content: content})
}

// History returns a copy of the turn sequence.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.Turns))
	copy(out, s.Turns)
	return out
}
