package nn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/tensor"
)

// Xavier returns a leaf Value initialized with the Glorot uniform
// distribution U(-sqrt(6/(fanIn+fanOut)), +sqrt(6/(fanIn+fanOut))).
func Xavier(fanIn, fanOut int, shape tensor.Shape, b tensor.Backend) *autograd.Value {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return fill(shape, b, distuv.Uniform{Min: -bound, Max: bound, Src: initSource()})
}

// HeNormal returns a leaf Value initialized with N(0, sqrt(2/fanIn)),
// the usual choice ahead of ReLU activations.
func HeNormal(fanIn int, shape tensor.Shape, b tensor.Backend) *autograd.Value {
	sigma := math.Sqrt(2.0 / float64(fanIn))
	return fill(shape, b, distuv.Normal{Mu: 0, Sigma: sigma, Src: initSource()})
}

// Randn returns a leaf Value drawn from the standard normal distribution.
func Randn(shape tensor.Shape, b tensor.Backend) *autograd.Value {
	return fill(shape, b, distuv.Normal{Mu: 0, Sigma: 1, Src: initSource()})
}

// Zeros returns a zero-filled leaf Value, the usual bias initialization.
func Zeros(shape tensor.Shape, b tensor.Backend) *autograd.Value {
	return autograd.Zeros(shape, tensor.Float32, b)
}

type sampler interface {
	Rand() float64
}

func fill(shape tensor.Shape, b tensor.Backend, dist sampler) *autograd.Value {
	raw := tensor.Zeros(shape, tensor.Float32, b.Device())
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(dist.Rand())
	}
	return autograd.New(raw, b)
}

var initSrc rand.Source

// SeedInit fixes the random source used for subsequent initializations,
// making them reproducible.
func SeedInit(seed uint64) {
	initSrc = rand.NewSource(seed)
}

func initSource() rand.Source {
	return initSrc // nil falls back to distuv's global source
}
