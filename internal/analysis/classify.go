package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"sociogram/internal/domain"
)

// Classification thresholds on standardized scores
const (
	zThreshold     = 0.5
	scoreThreshold = 0.8
)

// Scores are the standardized values a status is derived from
type Scores struct {
	ZPR  float64 `json:"z_pr" yaml:"z_pr"`
	ZNPR float64 `json:"z_npr" yaml:"z_npr"`
	// SP is social preference, SI is social impact
	SP float64 `json:"sp" yaml:"sp"`
	SI float64 `json:"si" yaml:"si"`
}

// Population holds the statistics nodes are standardized against
type Population struct {
	MeanPR   float64
	StdDevPR float64

	MeanNPR   float64
	StdDevNPR float64
}

// NewPopulation computes mean and population standard deviation of received
// preferences and non-preferences.
func NewPopulation(nodes []*domain.Node) Population {
	if len(nodes) == 0 {
		return Population{}
	}
	pr := make([]float64, len(nodes))
	npr := make([]float64, len(nodes))
	for i, n := range nodes {
		pr[i] = float64(n.PreferencesReceived)
		npr[i] = float64(n.NonPreferencesReceived)
	}
	return Population{
		MeanPR:    stat.Mean(pr, nil),
		StdDevPR:  math.Sqrt(stat.PopVariance(pr, nil)),
		MeanNPR:   stat.Mean(npr, nil),
		StdDevNPR: math.Sqrt(stat.PopVariance(npr, nil)),
	}
}

// Score standardizes one node. A zero standard deviation forces the score to 0.
func (p Population) Score(n *domain.Node) Scores {
	zPR := standardize(float64(n.PreferencesReceived), p.MeanPR, p.StdDevPR)
	zNPR := standardize(float64(n.NonPreferencesReceived), p.MeanNPR, p.StdDevNPR)
	return Scores{
		ZPR:  zPR,
		ZNPR: zNPR,
		SP:   zPR - zNPR,
		SI:   zPR + zNPR,
	}
}

func standardize(v, mean, stdDev float64) float64 {
	if stdDev == 0 || math.IsNaN(stdDev) {
		return 0
	}
	return (v - mean) / stdDev
}

// StatusFor applies the classification rules in priority order
func StatusFor(s Scores) domain.Status {
	switch {
	case s.ZPR > zThreshold && s.SP > scoreThreshold && s.ZNPR < 0:
		return domain.StatusPopular
	case s.ZNPR > zThreshold && s.SP < -scoreThreshold && s.ZPR < 0:
		return domain.StatusRejected
	case s.ZPR > zThreshold && s.ZNPR > zThreshold && s.SI > scoreThreshold:
		return domain.StatusControversial
	case s.SI < -scoreThreshold && s.ZPR < 0 && s.ZNPR < 0:
		return domain.StatusNeglected
	default:
		return domain.StatusAverage
	}
}

// Classify assigns a status to every node and returns the scores keyed by id.
// With no nodes it does nothing.
func Classify(nodes []*domain.Node) map[string]Scores {
	scores := make(map[string]Scores, len(nodes))
	if len(nodes) == 0 {
		return scores
	}

	pop := NewPopulation(nodes)
	for _, n := range nodes {
		s := pop.Score(n)
		n.Status = StatusFor(s)
		scores[n.ID] = s
	}
	return scores
}
