package clock_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lucax88x/datestamp/internal/clock"
)

func Test_SystemClock(t *testing.T) {
	// Given
	c := clock.NewSystemClock()

	// When
	actual := c.Now()

	// Then
	assert.False(t, actual.IsZero())
	assert.True(t, actual.Unix() > 0)
}

func Test_SeededClock_EmptyConstructor_ReturnsEpoch(t *testing.T) {
	// Given
	c := clock.NewSeededClock()

	// Then
	assert.Equal(t, int64(0), c.Now().Unix())
	assert.Equal(t, int64(0), c.Now().Unix())
}

func Test_SeededClock_RepeatsPattern(t *testing.T) {
	// Given
	c := clock.NewSeededClock(
		time.Unix(1576828800, 0),
		time.Unix(1579507200, 0),
	)

	// Then
	assert.Equal(t, int64(1576828800), c.Now().Unix())
	assert.Equal(t, int64(1579507200), c.Now().Unix())
	assert.Equal(t, int64(1576828800), c.Now().Unix())
}

func ExampleSeededClock() {
	c := clock.NewSeededClock(
		time.Date(2024, 3, 5, 8, 9, 10, 0, time.UTC),
	)

	fmt.Println(c.Now().Format(time.DateTime))

	// Output:
	// 2024-03-05 08:09:10
}
