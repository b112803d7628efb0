package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFixed(t *testing.T) {
	at := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)
	c := NewFixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestNewSystem_Location(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	c := NewSystem(loc)

	now := c.Now()
	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestNewSystem_NilLocation(t *testing.T) {
	c := NewSystem(nil)

	assert.Equal(t, time.Local, c.Now().Location())
}
