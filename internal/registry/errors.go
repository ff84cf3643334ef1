package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry API operations.
var (
	ErrNotFound    = errors.New("registry: not found")
	ErrRateLimited = errors.New("registry: rate limited by server")
	ErrBadRequest  = errors.New("registry: bad request")
	ErrUnavailable = errors.New("registry: unavailable")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op      string // Operation: "searchAgents", "getAgent"
	ChainID int    // If applicable
	AgentID string // If applicable
	Err     error
}

func (e *Error) Error() string {
	if e.AgentID != "" {
		return fmt.Sprintf("registry %s [%d/%s]: %v", e.Op, e.ChainID, e.AgentID, e.Err)
	}
	return fmt.Sprintf("registry %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op string, chainID int, agentID string, err error) error {
	return &Error{Op: op, ChainID: chainID, AgentID: agentID, Err: err}
}
