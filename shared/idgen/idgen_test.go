package idgen_test

import (
	"testing"

	"atithi/shared/idgen"

	"github.com/stretchr/testify/assert"
)

func TestNextIDMonotonic(t *testing.T) {
	gen := idgen.New()

	prev := gen.NextID()
	for i := 0; i < 1000; i++ {
		next := gen.NextID()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestNextIDExceedsFloatSafeInteger(t *testing.T) {
	gen := idgen.New()

	assert.Greater(t, gen.NextID(), int64(1)<<53)
}
