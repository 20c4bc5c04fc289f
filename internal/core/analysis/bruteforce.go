package analysis

import (
	"fmt"
	"math"
	"math/big"

	"passwordStrengthBackend/internal/core/domain"
)

// AttackProfiles is the fixed attacker throughput table. Estimates are always
// produced in this order.
var AttackProfiles = []domain.AttackProfile{
	{Name: "Basic CPU", Speed: "1M/s", AttemptsPerSec: 1e6},
	{Name: "Modern CPU", Speed: "100M/s", AttemptsPerSec: 1e8},
	{Name: "Single GPU", Speed: "10B/s", AttemptsPerSec: 1e10},
	{Name: "GPU Cluster", Speed: "1T/s", AttemptsPerSec: 1e12},
	{Name: "Quantum", Speed: "1P/s", AttemptsPerSec: 1e15},
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31_536_000

	// Past 1000 years the exact figure carries no information.
	uncrackableSeconds = float64(secondsPerYear) * 1000
	uncrackableLabel   = "practically uncrackable (> 1000 years)"
	instantLabel       = "instant"
)

// EstimateCrackTimes computes the expected crack time for every attack
// profile, assuming the password falls after half the keyspace. The division
// runs in big.Float so astronomically large combination counts bucket into
// the uncrackable label instead of overflowing.
func EstimateCrackTimes(combinations *big.Int) []domain.CrackTimeEstimate {
	halfSpace := new(big.Float).Quo(new(big.Float).SetInt(combinations), big.NewFloat(2))
	limit := big.NewFloat(uncrackableSeconds)

	estimates := make([]domain.CrackTimeEstimate, 0, len(AttackProfiles))
	for _, profile := range AttackProfiles {
		est := domain.CrackTimeEstimate{
			Profile: profile.Name,
			Speed:   profile.Speed,
		}

		seconds := new(big.Float).Quo(halfSpace, big.NewFloat(profile.AttemptsPerSec))
		if seconds.Cmp(limit) > 0 {
			est.Seconds = math.Inf(1)
			est.Display = uncrackableLabel
		} else {
			est.Seconds, _ = seconds.Float64()
			est.Display = FormatDuration(est.Seconds)
		}

		estimates = append(estimates, est)
	}
	return estimates
}

// FormatDuration buckets a duration in seconds into a readable label.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return instantLabel
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.1f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.1f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.1f days", seconds/secondsPerDay)
	case seconds <= uncrackableSeconds:
		return fmt.Sprintf("%.1f years", seconds/secondsPerYear)
	default:
		return uncrackableLabel
	}
}
