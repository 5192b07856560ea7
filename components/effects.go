package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TrailData is the smoke trail of a missile. It stays dormant until launch.
type TrailData struct {
	Active  bool
	Rate    float64 // particles per second
	Emitted int
	pending float64
}

// Emit advances the trail by dt and returns how many particles were released.
func (t *TrailData) Emit(dt float64) int {
	if !t.Active || t.Rate <= 0 {
		return 0
	}
	t.pending += t.Rate * dt
	n := int(t.pending)
	t.pending -= float64(n)
	t.Emitted += n
	return n
}

var Trail = donburi.NewComponentType[TrailData]()

// ImpactEffectData is an explosion whose radius grows until its tween ends.
type ImpactEffectData struct {
	Tween  *gween.Tween
	Radius float64
}

var ImpactEffect = donburi.NewComponentType[ImpactEffectData]()
