package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Missile      = donburi.NewTag().SetName("Missile")
	Wall         = donburi.NewTag().SetName("Wall")
	Crate        = donburi.NewTag().SetName("Crate")
	ImpactEffect = donburi.NewTag().SetName("ImpactEffect")
)
