// Copyright 2026 Graphene ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphene-ml/graphene/backend/cpu"
	"github.com/graphene-ml/graphene/nn"
	"github.com/graphene-ml/graphene/tensor"
)

func TestMLPForward(t *testing.T) {
	backend := cpu.New()

	model := nn.NewSequential(
		nn.NewLinear(784, 128, backend),
		nn.NewReLU[*cpu.Backend](),
		nn.NewLinear(128, 10, backend),
	)

	input := tensor.Rand[float32](tensor.Shape{32, 784}, backend)

	output, err := model.Forward(input)
	require.NoError(t, err)
	assert.True(t, output.Shape().Equal(tensor.Shape{32, 10}),
		"output shape = %v, want [32 10]", output.Shape())
}

func TestMLPParameters(t *testing.T) {
	backend := cpu.New()

	model := nn.NewSequential(
		nn.NewLinear(784, 128, backend),
		nn.NewReLU[*cpu.Backend](),
		nn.NewLinear(128, 10, backend),
	)

	params := model.Parameters()
	require.Len(t, params, 4)

	total := 0
	for _, p := range params {
		total += p.Tensor().NumElements()
	}
	// 784*128 + 128 + 128*10 + 10
	assert.Equal(t, 101770, total)
}

func TestFluentModelBuilding(t *testing.T) {
	backend := cpu.New()

	model := nn.NewSequential[*cpu.Backend]().
		Add(nn.NewLinear(16, 8, backend)).
		Add(nn.NewTanh[*cpu.Backend]()).
		Add(nn.NewLinear(8, 4, backend)).
		Add(nn.NewSigmoid[*cpu.Backend]())

	require.Equal(t, 4, model.Len())

	input := tensor.Rand[float32](tensor.Shape{2, 16}, backend)
	output, err := model.Forward(input)
	require.NoError(t, err)
	assert.True(t, output.Shape().Equal(tensor.Shape{2, 4}))

	// Sigmoid output lands in (0, 1)
	for _, v := range output.Data() {
		assert.Greater(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestForwardShapeError(t *testing.T) {
	backend := cpu.New()

	model := nn.NewSequential(
		nn.NewLinear(10, 5, backend),
	)

	input := tensor.Rand[float32](tensor.Shape{2, 7}, backend)
	_, err := model.Forward(input)
	require.Error(t, err)

	var mismatch *tensor.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "matmul", mismatch.Op)
}

func TestLoadWeightsThroughParameters(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinearWithOptions(2, 1, backend, true)

	// Parameters are live handles: overwrite them and the module sees it.
	for _, p := range layer.Parameters() {
		data := p.Tensor().Data()
		for i := range data {
			data[i] = 1
		}
	}

	input, err := tensor.FromSlice([]float32{3, 4}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	output, err := layer.Forward(input)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, float64(output.At(0, 0)), 1e-5)
}
