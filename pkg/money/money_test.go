package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 1200.0, Round2(1199.999999))
	assert.Equal(t, -0.13, Round2(-0.125))
}

func TestRound2_NoDriftAcrossPartials(t *testing.T) {
	// 0.1 added ten times must land exactly on 1.00 when rounded each step.
	total := 0.0
	for i := 0; i < 10; i++ {
		total = Round2(total + 0.1)
	}
	assert.Equal(t, 1.0, total)
}

func TestSettled(t *testing.T) {
	assert.True(t, Settled(0))
	assert.True(t, Settled(0.01))
	assert.False(t, Settled(0.02))
}
