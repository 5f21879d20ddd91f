package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"sociogram/internal/analysis"
	"sociogram/internal/domain"
)

func TestApplyFilter(t *testing.T) {
	g := analysis.Build(exampleRows())

	tests := []struct {
		name      string
		filter    Filter
		wantNodes []string
		wantEdges []string
	}{
		{
			name:      "everything",
			filter:    DefaultFilter(),
			wantNodes: []string{"A", "B", "C", "D"},
			wantEdges: []string{"e-A-B-0-positive", "e-A-C-1-positive", "e-A-D-3-negative", "e-B-A-0-positive", "e-C-A-0-positive", "e-C-B-1-positive"},
		},
		{
			name:      "negative only",
			filter:    Filter{ShowNegative: true},
			wantNodes: []string{"A", "B", "C", "D"},
			wantEdges: []string{"e-A-D-3-negative"},
		},
		{
			name:      "no edges",
			filter:    Filter{},
			wantNodes: []string{"A", "B", "C", "D"},
			wantEdges: []string{},
		},
		{
			name:      "threshold two",
			filter:    Filter{ShowPositive: true, ShowNegative: true, MinPreferences: 2},
			wantNodes: []string{"A", "B"},
			wantEdges: []string{"e-A-B-0-positive", "e-B-A-0-positive"},
		},
		{
			name:      "threshold above all",
			filter:    Filter{ShowPositive: true, ShowNegative: true, MinPreferences: 10},
			wantNodes: []string{},
			wantEdges: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ApplyFilter(g, tt.filter)
			if diff := cmp.Diff(tt.wantNodes, v.NodeIDs()); diff != "" {
				t.Errorf("nodes mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantEdges, v.EdgeIDs()); diff != "" {
				t.Errorf("edges mismatch (-want +got):\n%s", diff)
			}
			for _, e := range v.Edges {
				if !v.HasNode(e.Source) || !v.HasNode(e.Target) {
					t.Errorf("edge %s has a hidden endpoint", e.ID)
				}
			}
		})
	}
}

func TestApplyFilterNilGraph(t *testing.T) {
	v := ApplyFilter(nil, DefaultFilter())
	if !v.Empty() {
		t.Errorf("expected empty view, got %d nodes", v.Len())
	}
	if v.HasNode("A") {
		t.Error("expected no visible nodes")
	}
}

func TestReconcile(t *testing.T) {
	g := analysis.Build(exampleRows())
	all := ApplyFilter(g, DefaultFilter())
	top := ApplyFilter(g, Filter{ShowPositive: true, MinPreferences: 2})

	t.Run("shrink", func(t *testing.T) {
		want := Diff{
			Added:        []string{},
			Removed:      []string{"C", "D"},
			Updated:      []string{"A", "B"},
			EdgesAdded:   []string{},
			EdgesRemoved: []string{"e-A-C-1-positive", "e-A-D-3-negative", "e-C-A-0-positive", "e-C-B-1-positive"},
			EdgesUpdated: []string{"e-A-B-0-positive", "e-B-A-0-positive"},
		}
		got := Reconcile(all, top)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("diff mismatch (-want +got):\n%s", diff)
		}
		if !got.Changed() {
			t.Error("expected a changed diff")
		}
	})

	t.Run("grow", func(t *testing.T) {
		got := Reconcile(top, all)
		if diff := cmp.Diff([]string{"C", "D"}, got.Added); diff != "" {
			t.Errorf("added mismatch (-want +got):\n%s", diff)
		}
		if len(got.Removed) != 0 {
			t.Errorf("expected no removals, got %v", got.Removed)
		}
	})

	t.Run("from empty", func(t *testing.T) {
		got := Reconcile(View{}, all)
		if diff := cmp.Diff(all.NodeIDs(), got.Added); diff != "" {
			t.Errorf("added mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("identical", func(t *testing.T) {
		got := Reconcile(all, all)
		if got.Changed() {
			t.Errorf("expected no change, got %+v", got)
		}
		if len(got.Updated) != 4 {
			t.Errorf("expected 4 updated, got %d", len(got.Updated))
		}
	})

	t.Run("duplicate ids are keyed once", func(t *testing.T) {
		dup := View{Edges: []domain.Nomination{{ID: "x"}, {ID: "x"}}}
		got := Reconcile(View{}, dup)
		if diff := cmp.Diff([]string{"x"}, got.EdgesAdded); diff != "" {
			t.Errorf("edges added mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("repeated source rows", func(t *testing.T) {
		rows := append(exampleRows(), exampleRows()[0])
		view := ApplyFilter(analysis.Build(rows), DefaultFilter())

		count := 0
		for _, id := range view.EdgeIDs() {
			if id == "e-A-B-0-positive" {
				count++
			}
		}
		if count != 2 {
			t.Fatalf("expected the view to keep both A->B nominations, got %d", count)
		}

		got := Reconcile(View{}, view)
		want := []string{"e-A-B-0-positive", "e-A-C-1-positive", "e-A-D-3-negative", "e-B-A-0-positive", "e-C-A-0-positive", "e-C-B-1-positive"}
		if diff := cmp.Diff(want, got.EdgesAdded); diff != "" {
			t.Errorf("edges added mismatch (-want +got):\n%s", diff)
		}
	})
}
