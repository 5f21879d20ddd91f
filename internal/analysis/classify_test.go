package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sociogram/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		zPR  float64
		zNPR float64
		want domain.Status
	}{
		{"popular", 1.0, -0.5, domain.StatusPopular},
		{"rejected", -0.5, 1.0, domain.StatusRejected},
		{"controversial", 1.0, 1.0, domain.StatusControversial},
		{"neglected", -0.5, -0.5, domain.StatusNeglected},
		{"average at zero", 0, 0, domain.StatusAverage},
		{"popular needs negative zNPR", 2.0, 0, domain.StatusAverage},
		{"neglected needs SI below threshold", -0.3, -0.3, domain.StatusAverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scores{ZPR: tt.zPR, ZNPR: tt.zNPR, SP: tt.zPR - tt.zNPR, SI: tt.zPR + tt.zNPR}
			assert.Equal(t, tt.want, StatusFor(s))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("end-to-end example statuses", func(t *testing.T) {
		g := Build(exampleRows())
		scores := Classify(g.OrderedNodes())

		assert.Equal(t, domain.StatusPopular, g.Nodes["A"].Status)
		assert.Equal(t, domain.StatusPopular, g.Nodes["B"].Status)
		assert.Equal(t, domain.StatusNeglected, g.Nodes["C"].Status)
		assert.Equal(t, domain.StatusRejected, g.Nodes["D"].Status)

		// PR = [2,2,1,0]: mean 1.25, population variance 0.6875
		assert.InDelta(t, 0.75/math.Sqrt(0.6875), scores["A"].ZPR, 1e-9)
	})

	t.Run("zero variance forces zero scores", func(t *testing.T) {
		nodes := []*domain.Node{
			{ID: "A", PreferencesReceived: 2, NonPreferencesReceived: 0},
			{ID: "B", PreferencesReceived: 2, NonPreferencesReceived: 3},
			{ID: "C", PreferencesReceived: 2, NonPreferencesReceived: 1},
		}
		scores := Classify(nodes)
		for _, n := range nodes {
			assert.Equal(t, 0.0, scores[n.ID].ZPR, "node %s", n.ID)
			assert.False(t, math.IsNaN(scores[n.ID].ZNPR))
		}
	})

	t.Run("single node is average", func(t *testing.T) {
		nodes := []*domain.Node{{ID: "A", PreferencesReceived: 4}}
		Classify(nodes)
		assert.Equal(t, domain.StatusAverage, nodes[0].Status)
	})

	t.Run("no nodes is a no-op", func(t *testing.T) {
		assert.Empty(t, Classify(nil))
	})

	t.Run("every node gets exactly one known status", func(t *testing.T) {
		g := Build(rowsFromCells([][]string{
			{"A", "", "B", "C", "D", "E", "F", ""},
			{"B", "", "A", "C", "", "E", "", ""},
			{"C", "", "A", "", "", "E", "B", ""},
			{"D", "", "A", "E", "", "F", "", ""},
			{"E", "", "E", "", "", "A", "", ""},
			{"F", "", "", "", "", "", "", ""},
		}))
		Classify(g.OrderedNodes())

		known := make(map[domain.Status]bool)
		for _, s := range domain.Statuses {
			known[s] = true
		}
		for _, n := range g.OrderedNodes() {
			assert.True(t, known[n.Status], "node %s has status %q", n.ID, n.Status)
		}
	})

	t.Run("independent of node order", func(t *testing.T) {
		g := Build(exampleRows())
		nodes := g.OrderedNodes()
		Classify(nodes)
		want := make(map[string]domain.Status)
		for _, n := range nodes {
			want[n.ID] = n.Status
			n.Status = domain.StatusAverage
		}

		reversed := make([]*domain.Node, 0, len(nodes))
		for i := len(nodes) - 1; i >= 0; i-- {
			reversed = append(reversed, nodes[i])
		}
		Classify(reversed)
		for _, n := range reversed {
			assert.Equal(t, want[n.ID], n.Status)
		}
	})
}

func TestNewPopulation(t *testing.T) {
	pop := NewPopulation([]*domain.Node{
		{PreferencesReceived: 1},
		{PreferencesReceived: 3},
	})
	require.InDelta(t, 2.0, pop.MeanPR, 1e-12)
	assert.InDelta(t, 1.0, pop.StdDevPR, 1e-12, "population, not sample, deviation")
	assert.Equal(t, 0.0, pop.StdDevNPR)
}
