package domain

import (
	"testing"
)

func TestNewNodePosition(t *testing.T) {
	t.Run("creates unpinned position", func(t *testing.T) {
		pos := NewNodePosition("A", 100.5, -20)

		if pos.NodeID != "A" {
			t.Errorf("expected NodeID 'A', got %s", pos.NodeID)
		}
		if pos.X != 100.5 || pos.Y != -20 {
			t.Errorf("expected (100.5, -20), got (%f, %f)", pos.X, pos.Y)
		}
		if pos.Pinned {
			t.Error("expected Pinned to be false by default")
		}
	})
}
