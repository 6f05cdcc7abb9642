package utils

import "fmt"

// FormatServiceTime renders seconds since service-day midnight as HH:MM:SS.
// Hours may exceed 23 for trips running past midnight. Negative values render
// as "--:--:--".
func FormatServiceTime(seconds int) string {
	if seconds < 0 {
		return "--:--:--"
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}
