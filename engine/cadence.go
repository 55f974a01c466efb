package engine

import (
	"math"
	"math/cmplx"
	"time"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/lixenwraith/undertow/parameter"
)

var cadenceWindow = window.Hann(parameter.CadenceBins)

// ScrollCadence estimates the dominant scroll-burst frequency over the
// history window. Returns the peak frequency in Hz and its share of the
// spectrum's non-DC energy, or zeros when the window is too sparse to say
// anything. Diagnostic surface only; no channel reads it.
func (e *Engine) ScrollCadence() (hz, power float64) {
	samples := e.sampler.history.snapshot(nil)
	if len(samples) < parameter.CadenceMinSamples {
		return 0, 0
	}
	span := samples[len(samples)-1].At.Sub(samples[0].At).Seconds()
	if span <= 0 {
		return 0, 0
	}

	// Zero-order-hold resample of the speed envelope onto a uniform grid
	bins := make([]float64, parameter.CadenceBins)
	step := span / float64(parameter.CadenceBins)
	si := 0
	for i := range bins {
		t := samples[0].At.Add(time.Duration(float64(i) * step * float64(time.Second)))
		for si+1 < len(samples) && !samples[si+1].At.After(t) {
			si++
		}
		bins[i] = math.Abs(samples[si].Velocity)
	}

	// Remove DC so sustained speed does not mask the burst rhythm
	mean := 0.0
	for _, v := range bins {
		mean += v
	}
	mean /= float64(len(bins))
	for i := range bins {
		bins[i] = (bins[i] - mean) * cadenceWindow[i]
	}

	spectrum := fft.FFTReal(bins)

	best, bestMag, total := 0, 0.0, 0.0
	for i := 1; i < len(spectrum)/2; i++ {
		m := cmplx.Abs(spectrum[i])
		total += m
		if m > bestMag {
			bestMag = m
			best = i
		}
	}
	if best == 0 || total == 0 {
		return 0, 0
	}

	// Bin resolution is 1/span Hz at this grid
	return float64(best) / span, bestMag / total
}
