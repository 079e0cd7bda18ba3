// Package analysis provides frequency diagnostics for recorded body
// trajectories. Chaotic runs show up as broadband spectra; quasi-stable
// orbits as sharp peaks.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude spectrum of the samples up to the
// Nyquist bin. Input is zero-padded to the next power of two.
func PowerSpectrum(samples []float64) []float64 {
	if len(samples) == 0 {
		return nil
	}

	n := 1
	for n < len(samples) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, samples)

	spectrum := fft.FFTReal(padded)

	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC frequency in cycles
// per sample, or 0 when the spectrum is too short.
func DominantFrequency(samples []float64) float64 {
	ps := PowerSpectrum(samples)
	if len(ps) < 2 {
		return 0
	}

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0
	}

	n := 1
	for n < len(samples) {
		n *= 2
	}
	return float64(maxIdx) / float64(n)
}

// Detrend removes the mean so the DC bin does not swamp the plot.
func Detrend(samples []float64) []float64 {
	if len(samples) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))

	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = v - mean
	}
	return out
}
