package models

// APIParameter describes one named parameter of an API definition version.
// The prompt template references parameters as {name} or {{name}}.
type APIParameter struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Default     string `json:"default,omitempty"`
}
