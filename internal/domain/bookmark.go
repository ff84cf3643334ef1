package domain

import "time"

// Bookmark is a user-saved reference to an agent.
type Bookmark struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	ChainID   int       `json:"chain_id"`
	AgentID   string    `json:"agent_id"`
	Note      string    `json:"note,omitempty"`
}

// Touch updates the UpdatedAt timestamp to the current time.
func (b *Bookmark) Touch() {
	b.UpdatedAt = time.Now()
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
func (b *Bookmark) InitTimestamps() {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
}
