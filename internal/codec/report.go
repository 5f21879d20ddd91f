package codec

import (
	"sort"

	"sociogram/internal/analysis"
	"sociogram/internal/domain"
)

// Report is the exported form of one analysis
type Report struct {
	SessionID    string                `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Nodes        []ReportNode          `json:"nodes" yaml:"nodes"`
	Edges        []domain.Nomination   `json:"edges" yaml:"edges"`
	Cliques      []domain.Clique       `json:"cliques" yaml:"cliques"`
	Positions    []domain.NodePosition `json:"positions,omitempty" yaml:"positions,omitempty"`
	FailedStages []string              `json:"failed_stages,omitempty" yaml:"failed_stages,omitempty"`
}

// ReportNode is a node with its standardized scores
type ReportNode struct {
	domain.Node `yaml:",inline"`
	Scores      analysis.Scores `json:"scores" yaml:"scores"`
}

// NewReport builds a report from an analysis result. Positions may be nil.
func NewReport(result *analysis.Result, positions []domain.NodePosition) *Report {
	report := &Report{
		Nodes:     []ReportNode{},
		Edges:     []domain.Nomination{},
		Cliques:   []domain.Clique{},
		Positions: positions,
	}
	if result == nil || result.Graph == nil {
		return report
	}

	for _, n := range result.Nodes() {
		report.Nodes = append(report.Nodes, ReportNode{Node: *n, Scores: result.Scores[n.ID]})
	}
	report.Edges = append(report.Edges, result.Graph.Edges...)
	report.Cliques = append(report.Cliques, result.Cliques...)
	for stage := range result.StageErrors {
		report.FailedStages = append(report.FailedStages, string(stage))
	}
	sort.Strings(report.FailedStages)
	return report
}
