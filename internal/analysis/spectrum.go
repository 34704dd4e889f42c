package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns the one-sided magnitude spectrum of data. The mean is
// removed and a Hann window applied first; data is not modified.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	x := make([]float64, len(data))
	mean := stat.Mean(data, nil)
	for i, v := range data {
		x[i] = v - mean
	}
	window.Apply(x, window.Hann)

	spec := fft.FFTReal(x)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency returns the frequency of the strongest non-DC bin and its
// magnitude, for data sampled at sampleRate Hz.
func DominantFrequency(data []float64, sampleRate float64) (freq, power float64) {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, 0
	}

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	return float64(best) * sampleRate / float64(len(data)), ps[best]
}
