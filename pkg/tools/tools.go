// Package tools implements the named capabilities the sampling loop exposes
// to the model: the computer tool (forwarded over HTTP to the sandbox), the
// extraction tool (the only way to report success), the ui_not_as_expected
// pause signal, and pre-recorded custom actions.
package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Tool names with terminal or special semantics in the loop.
const (
	NameComputer        = "computer"
	NameExtraction      = "extraction"
	NameUINotAsExpected = "ui_not_as_expected"
	NameCustomAction    = "custom_action"
)

// Spec describes a tool to a provider handler.
type Spec struct {
	// Name is the tool name the model calls.
	Name string `json:"name"`
	// Description is shown to the model for non-native tools.
	Description string `json:"description,omitempty"`
	// InputSchema is a JSON schema for the tool input.
	InputSchema map[string]any `json:"input_schema,omitempty"`
	// InternalSpec carries provider-native tool typing (e.g. the Anthropic
	// computer-use tool type and display parameters); handlers that support
	// it send InternalSpec instead of a free-form schema.
	InternalSpec map[string]any `json:"-"`
	// Required lists input parameters validated before dispatch.
	Required []string `json:"-"`
}

// Result is the outcome of one tool execution.
type Result struct {
	Output      string
	Base64Image string
	Error       string
}

// Tool is a named capability with a JSON schema and an executor.
type Tool interface {
	Spec() Spec
	Execute(ctx context.Context, input map[string]any) (*Result, error)
}

// Registry resolves tools by name for one job run.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry builds a registry from the given tools, preserving order for
// provider tool lists.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		name := t.Spec().Name
		if _, dup := r.tools[name]; !dup {
			r.order = append(r.order, name)
		}
		r.tools[name] = t
	}
	return r
}

// Get resolves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Specs returns the tool specs in registration order.
func (r *Registry) Specs() []Spec {
	specs := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.tools[name].Spec())
	}
	return specs
}

// ValidateInput checks a tool's required parameters. A non-empty return is
// the corrective message routed back to the model; missing parameters never
// fail the job.
func ValidateInput(spec Spec, input map[string]any) string {
	var missing []string
	for _, param := range spec.Required {
		if v, ok := input[param]; !ok || v == nil {
			missing = append(missing, param)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	sort.Strings(missing)
	return fmt.Sprintf(
		"The tool %s failed! Reason: missing required parameters: %s. Please fix the input and try again.",
		spec.Name, strings.Join(missing, ", "),
	)
}
