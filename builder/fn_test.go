package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathq/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "ZZ", builder.ExcelColumnIDFn(701))
	assert.Equal(t, "AAA", builder.ExcelColumnIDFn(702))
	assert.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))
	assert.Equal(t, "2_5", builder.GridID(2, 5))

	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.SymbolNumberIDFn("v")(-1) })
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	assert.Equal(t, 3.0, builder.UniformIntWeightFn(3, 8)(nil), "nil rng yields min")
	assert.Equal(t, 4.0, builder.UniformIntWeightFn(4, 4)(rand.New(rand.NewSource(1))))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.ExponentialWeightFn(2)(nil))

	rng := rand.New(rand.NewSource(7))
	uni := builder.UniformIntWeightFn(1, 6)
	exp := builder.ExponentialWeightFn(0.5)
	for i := 0; i < 200; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.LessOrEqual(t, w, 6.0)
		assert.Equal(t, float64(int(w)), w)
		assert.GreaterOrEqual(t, exp(rng), 0.0)
	}

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformIntWeightFn(-1, 5) })
	assert.Panics(t, func() { builder.UniformIntWeightFn(5, 4) })
	assert.Panics(t, func() { builder.ExponentialWeightFn(0) })
}
