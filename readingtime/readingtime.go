// Package readingtime estimates how long a blog body takes to read.
package readingtime

import "strings"

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// Estimate returns the reading time of body in whole minutes, rounded up.
// Words are counted by splitting on whitespace runs. An empty or
// whitespace-only body yields 0.
func Estimate(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
