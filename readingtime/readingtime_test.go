package readingtime_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogging-api/readingtime"
)

func TestEstimateEmptyBody(t *testing.T) {
	assert.Equal(t, 0, readingtime.Estimate(""))
	assert.Equal(t, 0, readingtime.Estimate("   \n\t  "))
}

func TestEstimateShortBody(t *testing.T) {
	assert.Equal(t, 1, readingtime.Estimate("Very short now."))
	assert.Equal(t, 1, readingtime.Estimate("one"))
}

func TestEstimateRoundsUp(t *testing.T) {
	// exactly 200 words is one minute, 201 tips over to two
	assert.Equal(t, 1, readingtime.Estimate(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, readingtime.Estimate(strings.Repeat("word ", 201)))
	assert.Equal(t, 2, readingtime.Estimate(strings.Repeat("word ", 400)))
	assert.Equal(t, 3, readingtime.Estimate(strings.Repeat("word ", 401)))
}

func TestEstimateSplitsOnWhitespaceRuns(t *testing.T) {
	// mixed and repeated whitespace still counts three words
	assert.Equal(t, 1, readingtime.Estimate("a\t\tb \n  c"))
}

func TestEstimateRepeatedPhrase(t *testing.T) {
	body := strings.TrimSpace(strings.Repeat("hello ", 60))
	assert.GreaterOrEqual(t, readingtime.Estimate(body), 1)
}
