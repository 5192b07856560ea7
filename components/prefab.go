package components

import "github.com/yohamta/donburi"

// PrefabKind names a spawnable entity template.
type PrefabKind int

const (
	PrefabNone PrefabKind = iota
	PrefabPlayer
	PrefabMissile
	PrefabImpactEffect
	PrefabWall
	PrefabCrate
)

func (k PrefabKind) String() string {
	switch k {
	case PrefabPlayer:
		return "player"
	case PrefabMissile:
		return "missile"
	case PrefabImpactEffect:
		return "impact"
	case PrefabWall:
		return "wall"
	case PrefabCrate:
		return "crate"
	default:
		return "none"
	}
}

// PrefabData records which template an entity was spawned from and a
// scene-unique serial for logging.
type PrefabData struct {
	Kind   PrefabKind
	Serial int
}

var Prefab = donburi.NewComponentType[PrefabData]()
