package tensor

// Backend is the numeric kernel seam consumed by the autograd engine and the
// operation catalog. Implementations compute eagerly and return freshly
// allocated buffers; inputs are never mutated.
//
// Kernels panic on arguments that violate their documented contract. Shape
// validation with recoverable errors happens one level up, at operation-apply
// time, before a kernel is reached.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor
	Pow(a, b *RawTensor) *RawTensor
	Maximum(a, b *RawTensor) *RawTensor

	// MatMul multiplies two rank-2 buffers: [M, K] @ [K, N] -> [M, N].
	MatMul(a, b *RawTensor) *RawTensor

	// Element-wise unary operations.
	Neg(x *RawTensor) *RawTensor
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor
	Relu(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor

	// Scalar operations (element-wise against a Go scalar).
	AddScalar(x *RawTensor, s float64) *RawTensor
	MulScalar(x *RawTensor, s float64) *RawTensor

	// Comparison and selection.
	Greater(a, b *RawTensor) *RawTensor // bool mask, broadcasting
	Equal(a, b *RawTensor) *RawTensor   // bool mask, broadcasting
	Where(cond, x, y *RawTensor) *RawTensor

	// Reductions.
	Sum(x *RawTensor) *RawTensor                           // all axes, rank-0 result
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // sum along one axis
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor // max along one axis

	// Movement operations.
	Reshape(x *RawTensor, shape Shape) *RawTensor
	Transpose(x *RawTensor, axes ...int) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor // broadcast to shape, materialized

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
