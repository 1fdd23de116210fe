package websockets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Hub keeps the live connections of this process and fans messages out to them.
type Hub struct {
	mu    sync.Mutex
	conns map[string]Conn

	// writeMu serialises publishes; a connection supports one writer at a time.
	writeMu sync.Mutex
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[string]Conn)}
}

// Make sure we conform to the interfaces
var (
	_ ConnectionManager = (*Hub)(nil)
	_ Publisher         = (*Hub)(nil)
)

// AddConnection registers a connection under connectionID.
func (h *Hub) AddConnection(ctx context.Context, connectionID string, conn Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[connectionID]; ok {
		return fmt.Errorf("connection %s already registered", connectionID)
	}
	h.conns[connectionID] = conn
	return nil
}

// RemoveConnection forgets a connection. Removing an unknown connection is a no-op.
func (h *Hub) RemoveConnection(ctx context.Context, connectionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, connectionID)
	return nil
}

// Len reports the number of live connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Publish sends a message to all connected clients. Connections that fail the write are
// closed and dropped.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	h.mu.Lock()
	targets := make(map[string]Conn, len(h.conns))
	for id, c := range h.conns {
		targets[id] = c
	}
	h.mu.Unlock()

	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	for connectionID, conn := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := conn.WriteJSON(message); err != nil {
			slog.Info("stale connection found, deleting", "connectionId", connectionID, "error", err)
			_ = conn.Close()
			if err := h.RemoveConnection(ctx, connectionID); err != nil {
				slog.Error("failed to delete stale connection", "error", err)
			}
		}
	}
	return nil
}
