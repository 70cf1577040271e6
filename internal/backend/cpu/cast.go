package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/gradia-ml/gradia/internal/tensor"
)

// Cast converts a buffer to a different data type. Float16 is stored as IEEE
// half precision and round-trips through float32.
func (c *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, c.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	n := x.NumElements()
	for i := 0; i < n; i++ {
		writeElement(result, i, readElement(x, i))
	}

	return result
}

// readElement reads element i as float64, the widest supported numeric type.
func readElement(r *tensor.RawTensor, i int) float64 {
	switch r.DType() {
	case tensor.Float32:
		return float64(r.AsFloat32()[i])
	case tensor.Float64:
		return r.AsFloat64()[i]
	case tensor.Float16:
		return float64(r.AsFloat16()[i].Float32())
	case tensor.Int32:
		return float64(r.AsInt32()[i])
	case tensor.Int64:
		return float64(r.AsInt64()[i])
	case tensor.Uint8:
		return float64(r.AsUint8()[i])
	case tensor.Bool:
		if r.AsBool()[i] {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", r.DType()))
	}
}

func writeElement(r *tensor.RawTensor, i int, v float64) {
	switch r.DType() {
	case tensor.Float32:
		r.AsFloat32()[i] = float32(v)
	case tensor.Float64:
		r.AsFloat64()[i] = v
	case tensor.Float16:
		r.AsFloat16()[i] = float16.Fromfloat32(float32(v))
	case tensor.Int32:
		r.AsInt32()[i] = int32(v)
	case tensor.Int64:
		r.AsInt64()[i] = int64(v)
	case tensor.Uint8:
		r.AsUint8()[i] = uint8(v)
	case tensor.Bool:
		r.AsBool()[i] = v != 0
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", r.DType()))
	}
}
