package domain

import (
	"math"
	"testing"
)

func TestNewNode(t *testing.T) {
	t.Run("creates node with defaults", func(t *testing.T) {
		node := NewNode("A", "Alice")

		if node.ID != "A" {
			t.Errorf("expected ID 'A', got %s", node.ID)
		}
		if node.Label != "Alice" {
			t.Errorf("expected label 'Alice', got %s", node.Label)
		}
		if node.Status != StatusAverage {
			t.Errorf("expected status %s, got %s", StatusAverage, node.Status)
		}
		if node.Betweenness != 0 {
			t.Errorf("expected zero betweenness, got %f", node.Betweenness)
		}
		if node.TotalDegree != 0 || node.PreferencesReceived != 0 {
			t.Error("expected counters to start at zero")
		}
	})

	t.Run("empty label falls back to id", func(t *testing.T) {
		node := NewNode("B", "")
		if node.Label != "B" {
			t.Errorf("expected label 'B', got %s", node.Label)
		}
	})
}

func TestNodeDisplayName(t *testing.T) {
	node := &Node{ID: "C"}
	if node.DisplayName() != "C" {
		t.Errorf("expected 'C', got %s", node.DisplayName())
	}
	node.Label = "Carol"
	if node.DisplayName() != "Carol" {
		t.Errorf("expected 'Carol', got %s", node.DisplayName())
	}
}

func TestSocialPreferenceScore(t *testing.T) {
	node := NewNode("A", "")
	node.PreferencesReceived = 2
	node.NonPreferencesReceived = 5

	if got := node.SocialPreferenceScore(); got != -3 {
		t.Errorf("expected -3, got %d", got)
	}
}

func TestComputeRadius(t *testing.T) {
	t.Run("base radius with no nominations", func(t *testing.T) {
		if r := ComputeRadius(0, 0); r != 5 {
			t.Errorf("expected 5, got %f", r)
		}
	})

	t.Run("grows with positive nominations", func(t *testing.T) {
		r := ComputeRadius(2, 2)
		if math.Abs(r-10) > 1e-9 {
			t.Errorf("expected 10, got %f", r)
		}
	})

	t.Run("is monotonic", func(t *testing.T) {
		prev := ComputeRadius(0, 0)
		for i := 1; i < 20; i++ {
			r := ComputeRadius(i, 0)
			if r <= prev {
				t.Fatalf("radius not increasing at %d: %f <= %f", i, r, prev)
			}
			prev = r
		}
	})
}

func TestNodeClone(t *testing.T) {
	node := NewNode("A", "Alice")
	node.PreferencesReceived = 3

	clone := node.Clone()
	clone.PreferencesReceived = 9

	if node.PreferencesReceived != 3 {
		t.Error("expected clone to be independent of original")
	}
}
