// Package session tracks browser sessions and the user actions recorded
// against them. Two backends implement [Store]: an in-memory map for single
// instances and a Redis store for deployments with more than one replica.
// Sessions are best-effort product telemetry, not an authentication boundary.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session id has no live session behind it
// (never created, expired, or cleared).
var ErrNotFound = errors.New("session not found")

// Action is one recorded user interaction.
type Action struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Session is the tracked state for one browser session.
type Session struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
	Actions    []Action  `json:"actions"`
}

// Store is the session backend contract. All methods are safe for concurrent
// use.
type Store interface {
	// Create starts a new session with a fresh id.
	Create(ctx context.Context) (*Session, error)

	// Get returns the session for id, refreshing its LastActive timestamp.
	// Returns ErrNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*Session, error)

	// Track appends an action to the session.
	Track(ctx context.Context, id string, action Action) error

	// Actions returns the recorded actions in insertion order.
	Actions(ctx context.Context, id string) ([]Action, error)

	// Clear drops the session and everything recorded against it.
	Clear(ctx context.Context, id string) error
}
