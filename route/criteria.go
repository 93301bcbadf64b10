package route

import "fmt"

// Criteria weighs the cost, speed and reliability dimensions of a route
type Criteria struct {
	Cost        float64 `json:"cost"`
	Speed       float64 `json:"speed"`
	Reliability float64 `json:"reliability"`
}

var (
	DefaultCriteria  = Criteria{Cost: 0.35, Speed: 0.40, Reliability: 0.25}
	FastestCriteria  = Criteria{Speed: 1}
	CheapestCriteria = Criteria{Cost: 1}
)

// Normalize scales the weights to sum to 1. Negative weights count as zero
// and all-zero weights fall back to the defaults.
func (c Criteria) Normalize() Criteria {
	c.Cost = max(c.Cost, 0)
	c.Speed = max(c.Speed, 0)
	c.Reliability = max(c.Reliability, 0)

	sum := c.Cost + c.Speed + c.Reliability
	if sum == 0 {
		return DefaultCriteria
	}
	return Criteria{
		Cost:        c.Cost / sum,
		Speed:       c.Speed / sum,
		Reliability: c.Reliability / sum,
	}
}

func (c Criteria) String() string {
	return fmt.Sprintf("c=%.4f,s=%.4f,r=%.4f", c.Cost, c.Speed, c.Reliability)
}
