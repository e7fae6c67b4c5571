// Package classifier assigns a priority tier to a parsed order using
// configurable weighted heuristics over earnings, distance and time.
package classifier

import (
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/config"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/domain"
)

type Classifier struct {
	weights config.Weights
}

func New(weights config.Weights) *Classifier {
	return &Classifier{weights: weights}
}

// Score computes the weighted desirability of an order. Earnings pull the
// score up, distance and time estimates pull it down. Missing estimates
// contribute nothing.
func (c *Classifier) Score(o *domain.ParsedOrder) float64 {
	return c.weights.Earnings*o.Amount -
		c.weights.Distance*o.DistanceKm -
		c.weights.Time*float64(o.TimeMin)
}

// Classify maps the score onto the three tiers. Deterministic for equal
// weights and inputs.
func (c *Classifier) Classify(o *domain.ParsedOrder) domain.Priority {
	score := c.Score(o)
	switch {
	case score >= c.weights.HighThreshold:
		return domain.PriorityHigh
	case score >= c.weights.MediumThreshold:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
