package dto

// SendMessageRequest is the inbound chat payload from the frontend.
type SendMessageRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
}

// SourceLinkDTO is one supporting link returned with a reply.
type SourceLinkDTO struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ChatResult is the three-field reply contract relied upon by the frontend;
// its shape must not change.
type ChatResult struct {
	Reply     string          `json:"reply"`
	ToolsUsed []string        `json:"tools_used"`
	Sources   []SourceLinkDTO `json:"sources"`
}

// HistoryTurnDTO is one turn of the session transcript projection.
type HistoryTurnDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
