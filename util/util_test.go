package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(6, Sum([]int{1, 2, 3}))
	assert.InDelta(4.5, Sum([]float64{1.5, 3.0}), 1e-9)
	assert.Zero(Sum([]int{}))
}

func TestArgMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, ArgMax([]float64{0.1, 0.3, 0.9, 0.2}))
	assert.Equal(0, ArgMax([]int{5, 5, 5})) // first of equals
	assert.Equal(-1, ArgMax([]int{}))
}
