package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// RadialSpectrum returns the one-sided amplitude spectrum of the
// mean-removed series sampled every dt, with the frequency of each bin.
// Bin 0 is dropped.
func RadialSpectrum(data []float64, dt float64) (freqs, power []float64) {
	n := len(data)
	if n < 4 || dt <= 0 {
		return nil, nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	half := n / 2
	freqs = make([]float64, 0, half)
	power = make([]float64, 0, half)
	for k := 1; k <= half; k++ {
		freqs = append(freqs, float64(k)/(float64(n)*dt))
		power = append(power, cmplx.Abs(spectrum[k]))
	}
	return freqs, power
}

// DominantFrequency returns the frequency of the strongest bin, or 0.
func DominantFrequency(freqs, power []float64) float64 {
	best, f := math.Inf(-1), 0.0
	for i, p := range power {
		if p > best {
			best, f = p, freqs[i]
		}
	}
	return f
}

// UniformPrefix returns how many leading samples share the first sample
// spacing. Recorded runs append the final and absorption states off-grid.
func UniformPrefix(times []float64) int {
	if len(times) < 2 {
		return len(times)
	}
	dt := times[1] - times[0]
	tol := 1e-9 * math.Abs(dt)
	for i := 2; i < len(times); i++ {
		if math.Abs(times[i]-times[i-1]-dt) > tol {
			return i
		}
	}
	return len(times)
}
