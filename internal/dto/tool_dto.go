package dto

// ExecuteToolRequest asks the registry to run one named tool.
type ExecuteToolRequest struct {
	Tool      string                 `json:"tool" validate:"required"`
	Arguments map[string]interface{} `json:"arguments"`
}

// ListToolsResponse enumerates the registered tool names.
type ListToolsResponse struct {
	AvailableTools []string `json:"available_tools"`
}
