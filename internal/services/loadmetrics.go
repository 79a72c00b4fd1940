package services

import (
	"math"

	"loadplan-service/internal/domain"
)

// Spread between axle loads beyond which a plan is flagged Unbalanced,
// as a fraction of total placed weight.
const balanceSpreadFraction = 0.3

// LoadMetrics aggregates the utilization and axle-load figures derived
// from a finished placement set.
type LoadMetrics struct {
	TotalWeightKg        float64
	FrontAxleLoadKg      float64
	RearAxleLoadKg       float64
	SpaceUtilizationPct  int
	WeightUtilizationPct int
	Balance              domain.BalanceLabel
}

// ComputeLoadMetrics derives space/weight utilization and the two-point
// axle load distribution. Each placement's longitudinal center is
// compared against reference points at 20% and 80% of vehicle length:
// weight ahead of the front reference loads the front axle fully, weight
// past the rear reference loads the rear axle fully, and anything between
// is interpolated linearly.
func ComputeLoadMetrics(v domain.VehicleEnvelope, placements []domain.Placement) LoadMetrics {
	frontRef := v.FrontAxleRef()
	rearRef := v.RearAxleRef()
	span := rearRef - frontRef

	var m LoadMetrics
	placedArea := 0.0
	for _, p := range placements {
		placedArea += p.Area()
		m.TotalWeightKg += p.WeightKg

		c := p.CenterY()
		switch {
		case c < frontRef || span <= 0:
			m.FrontAxleLoadKg += p.WeightKg
		case c > rearRef:
			m.RearAxleLoadKg += p.WeightKg
		default:
			t := (c - frontRef) / span
			m.RearAxleLoadKg += p.WeightKg * t
			m.FrontAxleLoadKg += p.WeightKg * (1 - t)
		}
	}

	if area := v.FloorArea(); area > 0 {
		m.SpaceUtilizationPct = int(math.Round(100 * placedArea / area))
	}
	if v.MaxWeightKg > 0 {
		m.WeightUtilizationPct = int(math.Round(100 * m.TotalWeightKg / v.MaxWeightKg))
	}

	m.Balance = classifyBalance(v, m)
	return m
}

// Overload takes priority over imbalance: a plan exceeding either axle
// limit is Overloaded even when front and rear carry similar weight.
func classifyBalance(v domain.VehicleEnvelope, m LoadMetrics) domain.BalanceLabel {
	if m.FrontAxleLoadKg > v.FrontAxleLimitKg || m.RearAxleLoadKg > v.RearAxleLimitKg {
		return domain.BalanceOverloaded
	}
	if math.Abs(m.FrontAxleLoadKg-m.RearAxleLoadKg) > balanceSpreadFraction*m.TotalWeightKg {
		return domain.BalanceUnbalanced
	}
	return domain.BalanceOptimal
}
