package adapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/meridianbank/origination/internal/domain/port"
)

var _ port.DocumentChecker = (*StubDocumentChecker)(nil)

// StubDocumentChecker is a development/test adapter that tracks document
// completeness in memory. Applications are considered satisfied unless
// explicitly marked otherwise. It implements port.DocumentChecker.
type StubDocumentChecker struct {
	mu      sync.RWMutex
	missing map[string]bool
}

// NewStubDocumentChecker creates a new stub adapter.
func NewStubDocumentChecker() *StubDocumentChecker {
	return &StubDocumentChecker{missing: make(map[string]bool)}
}

// RequiredDocsSatisfied reports whether the application's document set is
// complete.
func (c *StubDocumentChecker) RequiredDocsSatisfied(_ context.Context, applicationID string) (bool, error) {
	if applicationID == "" {
		return false, fmt.Errorf("application ID is required")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.missing[applicationID], nil
}

// MarkMissing flags an application as having an incomplete document set.
func (c *StubDocumentChecker) MarkMissing(applicationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.missing[applicationID] = true
}

// MarkSatisfied clears a previously flagged application.
func (c *StubDocumentChecker) MarkSatisfied(applicationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.missing, applicationID)
}
