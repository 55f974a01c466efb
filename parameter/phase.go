package parameter

// Emotional Phase Accumulation
//
// Rates are per second of simulated time; the active phase picks its own
// weighted blend of the live intent channels. Rates are floored at zero, a
// phase never un-accumulates.
const (
	// Curiosity: driven by rush and mouse energy, small bonus while hesitant
	CuriosityRushWeight      = 0.03
	CuriosityMouseWeight     = 0.02
	CuriosityHesitationBonus = 0.01
	CuriosityHesitationGate  = 0.2

	// Uncertainty: feeds on hesitation and lingering, rushing works against it
	UncertaintyHesitationWeight = 0.04
	UncertaintyLingerWeight     = 0.02
	UncertaintyRushPenalty      = 0.01

	// Confrontation: mouse energy and rush, bonus while dwelling
	ConfrontationMouseWeight = 0.03
	ConfrontationRushWeight  = 0.02
	ConfrontationDwellBonus  = 0.015

	// Revelation: lingering and calm
	RevelationLingerWeight = 0.05
	RevelationCalmWeight   = 0.02
)

// InteractionPulseBoost is the flat accumulator bump applied per significant
// interaction (pointer press), independent of the active phase
const InteractionPulseBoost = 0.02
