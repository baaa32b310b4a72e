package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw := mustNewRaw[T](shape, b)
	return New[T, B](raw, b) // Memory is zero-initialized by NewRaw
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = 1
	}
	return t
}

// Full creates a tensor filled with the given value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a tensor with uniform random values in [0, 1).
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.Float64())
	}
	return t
}

// Randn creates a tensor with values from a standard normal distribution
// (mean 0, stddev 1).
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.NormFloat64())
	}
	return t
}

// Arange creates a 1-D tensor with values [0, 1, ..., n-1].
func Arange[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = T(i)
	}
	return t
}

// Linspace creates a 1-D tensor with n evenly spaced values from start to end
// (inclusive).
func Linspace[T DType, B Backend](start, end float64, n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	if n == 1 {
		data[0] = T(start)
		return t
	}
	step := (end - start) / float64(n-1)
	for i := range data {
		data[i] = T(start + float64(i)*step)
	}
	return t
}

// Eye creates an n x n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	data := t.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return t
}

// mustNewRaw allocates a RawTensor for a creation function, where an invalid
// shape is a programming error.
func mustNewRaw[T DType](shape Shape, b Backend) *RawTensor {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(err)
	}
	return raw
}
