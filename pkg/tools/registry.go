// Package tools is the whitelist of operations the assistant may run. A
// tool name maps to a handler; execution always comes back as a tagged
// envelope with exactly one level of result nesting, so callers never need
// defensive unwrapping.
package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Handler runs a tool with loosely-typed arguments (decoded JSON).
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Tool is a registered, callable operation.
type Tool struct {
	Name        string
	Description string
	Run         Handler
}

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the execution envelope. Exactly one of Result or Message is
// meaningful, selected by Status.
type Result struct {
	Status  string      `json:"status"`
	Tool    string      `json:"tool"`
	Result  interface{} `json:"result,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Registry maps tool names to handlers. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: map[string]*Tool{}}
}

// Register adds or replaces a tool under its name.
func (r *Registry) Register(t *Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name] = t
}

// Names lists registered tools in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs a named tool. An unknown name or a handler error comes back
// as an error envelope; Execute itself never fails.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]interface{}) Result {
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return Result{
			Status:  StatusError,
			Tool:    name,
			Message: fmt.Sprintf("tool %q not available, available tools: %v", name, r.Names()),
		}
	}

	out, err := tool.Run(ctx, args)
	if err != nil {
		return Result{
			Status:  StatusError,
			Tool:    name,
			Message: fmt.Sprintf("tool execution failed: %v", err),
		}
	}

	return Result{
		Status: StatusSuccess,
		Tool:   name,
		Result: out,
	}
}
