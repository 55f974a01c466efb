package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const (
	chimeAmplitude   = 0.22
	chimeDecayRate   = 5.0
	chimeHarmonicMix = 0.15

	tickFrequencyHz = 1320.0
	tickAmplitude   = 0.18
	tickDecayRate   = 55.0

	sweepFreqMinHz = 110.0
	sweepFreqMaxHz = 440.0
	sweepAmplitude = 0.16
)

// ChimeGenerator rings a decaying tone with a quiet octave harmonic
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime at the given fundamental
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * chimeDecayRate)
		sample := chimeAmplitude * envelope *
			(math.Sin(2*math.Pi*g.freq*t) + chimeHarmonicMix*math.Sin(4*math.Pi*g.freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// TickGenerator produces a very short bright blip
type TickGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewTickGenerator creates a tick generator
func NewTickGenerator(sr beep.SampleRate) *TickGenerator {
	return &TickGenerator{sr: sr}
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * tickDecayRate)
		sample := tickAmplitude * envelope * math.Sin(2*math.Pi*tickFrequencyHz*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TickGenerator) Err() error {
	return nil
}

// SweepGenerator glides two octaves upward under a swell-and-fade envelope,
// shadowing the perception shift's run to saturation. Frequency is advanced
// by phase accumulation so the glide stays continuous.
type SweepGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	phase   float64
}

// NewSweepGenerator creates a sweep generator
func NewSweepGenerator(sr beep.SampleRate) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		samples: sr.N(sweepDuration),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)

		freq := sweepFreqMinHz + (sweepFreqMaxHz-sweepFreqMinHz)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Sin(progress * math.Pi)
		sample := sweepAmplitude * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
