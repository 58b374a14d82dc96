package manager

import (
	"fmt"
	"time"

	"classic-snake/game/types"
)

// speedTier removes step from the delay while it is above floor.
type speedTier struct {
	floor time.Duration
	step  time.Duration
}

var speedTiers = []speedTier{
	{150 * time.Millisecond, 5 * time.Millisecond},
	{100 * time.Millisecond, 3 * time.Millisecond},
	{50 * time.Millisecond, 2 * time.Millisecond},
	{types.MinDelay, 1 * time.Millisecond},
}

// NextDelay returns the tick interval after one food is eaten. The tier is
// picked from the current delay, so 155ms becomes 150ms.
func NextDelay(delay time.Duration) time.Duration {
	for _, tier := range speedTiers {
		if delay > tier.floor {
			return delay - tier.step
		}
	}
	return delay
}

// FormatScore renders a score as three zero-padded digits.
func FormatScore(score int) string {
	return fmt.Sprintf("%03d", score)
}
