// Copyright 2026 Graphene ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphene-ml/graphene/backend/cpu"
	"github.com/graphene-ml/graphene/tensor"
)

func TestPublicAPI(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	b := tensor.Ones[float32](tensor.Shape{2, 2}, backend)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 3, 4, 5}, sum.Data())

	prod, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 3, 7, 7}, prod.Data())
}

func TestShapeMismatchSurfacesTyped(t *testing.T) {
	backend := cpu.New()

	a := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
	b := tensor.Zeros[float32](tensor.Shape{4, 5}, backend)

	_, err := a.Add(b)
	require.Error(t, err)

	var mismatch *tensor.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.True(t, mismatch.Left.Equal(tensor.Shape{2, 3}))
	assert.True(t, mismatch.Right.Equal(tensor.Shape{4, 5}))
}

func TestBackendInfo(t *testing.T) {
	backend := cpu.New()

	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())

	x := tensor.Zeros[float32](tensor.Shape{3}, backend)
	assert.Equal(t, tensor.CPU, x.Device())
	assert.Equal(t, tensor.Float32, x.DType())
}
