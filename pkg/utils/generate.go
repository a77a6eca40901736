package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ==================== IDS ====================

// GenerateID returns "<prefix>-<unix millis>", e.g. user-1718000000000.
func GenerateID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

// GenerateRandomID appends a short random suffix to GenerateID so that ids
// minted within the same millisecond do not collide.
func GenerateRandomID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%s", GenerateID(prefix, now), suffix)
}

// ==================== DATES ====================

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
