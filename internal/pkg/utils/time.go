package utils

import (
	"time"

	"careform-service/internal/pkg/constvars"
)

// TodayYMD returns the current local date in the record date format.
func TodayYMD() string {
	return time.Now().Format(constvars.DateLayoutYMD)
}
