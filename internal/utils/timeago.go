package utils

import (
	"fmt"
	"time"
)

// TimeAgo renders the elapsed time between createdAt and now as a coarse
// human label. The checks run top-down and the first match wins, so boundary
// values (exactly 1 day, 30 days, 365 days) fall through to the finer
// bucket. Integer division throughout.
func TimeAgo(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		elapsed = 0
	}

	days := int(elapsed.Hours()) / 24
	hours := int(elapsed.Hours()) % 24
	minutes := int(elapsed.Minutes()) % 60

	switch {
	case days > 365:
		return fmt.Sprintf("%d years ago", days/365)
	case days > 30:
		return fmt.Sprintf("%d months ago", days/30)
	case days > 0:
		return fmt.Sprintf("%d days ago", days)
	case hours > 0:
		return fmt.Sprintf("%d hours ago", hours)
	case minutes > 0:
		return fmt.Sprintf("%d minutes ago", minutes)
	default:
		return "a few seconds ago"
	}
}
