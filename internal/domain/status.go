package domain

// StatusEffects - все изменения, которые жертвы оставляют на игроке.
// Всегда присутствует, стартует с DefaultStatusEffects.
type StatusEffects struct {
	CritChance         float64      `json:"critChance"`
	SightReduction     int          `json:"sightReduction"`
	DisabledMoves      DirectionSet `json:"disabledMoves"`
	TempAttackBuff     int          `json:"tempAttackBuff"`
	TempBuffTurns      int          `json:"tempBuffTurns"`
	MovementPenalty    int          `json:"movementPenalty"`
	HPRegeneration     int          `json:"hpRegeneration"`
	SurpriseMultiplier float64      `json:"surpriseMultiplier"`
	Vampiric           bool         `json:"vampiric"`
	CanUsePotions      bool         `json:"canUsePotions"`
}

func DefaultStatusEffects() StatusEffects {
	return StatusEffects{
		SurpriseMultiplier: 1.0,
		CanUsePotions:      true,
	}
}

// SightRadius - базовый радиус минус штраф, но не меньше MinSightRadius
func (e StatusEffects) SightRadius(base int) int {
	r := base - e.SightReduction
	if r < MinSightRadius {
		r = MinSightRadius
	}
	return r
}

// MoveRefusalChance - вероятность, что штраф движения съест шаг
func (e StatusEffects) MoveRefusalChance() float64 {
	return float64(e.MovementPenalty) * MovementPenaltyStep
}
