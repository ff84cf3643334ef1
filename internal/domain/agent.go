// Package domain contains the core entity types for the agent registry browser.
package domain

import "time"

// AgentStatus describes whether a registered agent is currently serving.
type AgentStatus string

// Agent statuses reported by the registry.
const (
	AgentStatusActive   AgentStatus = "active"
	AgentStatusInactive AgentStatus = "inactive"
)

// Valid reports whether s is a status the registry can report.
func (s AgentStatus) Valid() bool {
	return s == AgentStatusActive || s == AgentStatusInactive
}

// Agent is an autonomous agent registered on one of the supported chains.
// Skills and Domains carry composite taxonomy slugs ("category" or
// "category/child") as defined by the taxonomy package; they arrive from
// the registry as opaque strings and are resolved for display only.
type Agent struct {
	ID           string      `json:"id"`
	ChainID      int         `json:"chain_id"`
	Address      string      `json:"address"` // on-chain registry address
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Skills       []string    `json:"skills,omitempty"`
	Domains      []string    `json:"domains,omitempty"`
	Status       AgentStatus `json:"status"`
	Version      string      `json:"version,omitempty"`
	MetadataURI  string      `json:"metadata_uri,omitempty"`
	Owner        string      `json:"owner,omitempty"`
	RegisteredAt time.Time   `json:"registered_at"`
}

// IsActive reports whether the agent is currently serving.
func (a *Agent) IsActive() bool {
	return a.Status == AgentStatusActive
}

// Ref identifies one agent across chains.
type Ref struct {
	ChainID int    `json:"chain_id"`
	AgentID string `json:"agent_id"`
}
