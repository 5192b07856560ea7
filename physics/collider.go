package physics

import (
	"github.com/automoto/rocketeer/config"
	"github.com/solarlune/resolv"
)

// Scale is the number of resolv units per world metre.
const Scale = 16.0

// Collider keeps a world-space box and mirrors its XZ footprint into a resolv
// object used for broadphase queries. The proxy is one resolv unit wider than
// the footprint because resolv treats the far edge as exclusive pixels.
type Collider struct {
	Object *resolv.Object
	Layer  config.CollisionLayer
	Owner  interface{}

	bounds Bounds
	space  *resolv.Space
}

// NewSpace creates the broadphase space covering an arena footprint given in
// metres. cellSize is in resolv units.
func NewSpace(width, depth float64, cellSize int) *resolv.Space {
	return resolv.NewSpace(int(width*Scale+0.5), int(depth*Scale+0.5), cellSize, cellSize)
}

// NewCollider adds a collider with bounds b to space.
func NewCollider(space *resolv.Space, b Bounds, layer config.CollisionLayer, owner interface{}) *Collider {
	x, y, w, h := proxyRect(b)
	obj := resolv.NewObject(x, y, w, h, layer.String())
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	c := &Collider{
		Object: obj,
		Layer:  layer,
		Owner:  owner,
		bounds: b,
		space:  space,
	}
	obj.Data = c
	space.Add(obj)
	return c
}

func proxyRect(b Bounds) (x, y, w, h float64) {
	size := b.Size()
	return b.Min.X() * Scale, b.Min.Z() * Scale, size.X()*Scale + 1, size.Z()*Scale + 1
}

// Bounds returns the collider's world-space box.
func (c *Collider) Bounds() Bounds {
	return c.bounds
}

// SetBounds moves the collider to b.
func (c *Collider) SetBounds(b Bounds) {
	c.bounds = b
	c.Object.X, c.Object.Y, c.Object.W, c.Object.H = proxyRect(b)
	if c.space != nil {
		c.Object.Update()
	}
}

// Remove takes the collider out of its space.
func (c *Collider) Remove() {
	if c.space == nil {
		return
	}
	c.space.Remove(c.Object)
	c.space = nil
}

// Removed reports whether Remove has been called.
func (c *Collider) Removed() bool {
	return c.space == nil
}

// Nearby returns the colliders tagged with any of tags whose broadphase cells
// the footprint would touch after moving by dx, dz metres.
func (c *Collider) Nearby(dx, dz float64, tags ...string) []*Collider {
	if len(tags) == 0 || c.Removed() {
		return nil
	}
	check := c.Object.Check(dx*Scale, dz*Scale, tags...)
	if check == nil {
		return nil
	}

	var found []*Collider
	for _, obj := range check.ObjectsByTags(tags...) {
		other, ok := obj.Data.(*Collider)
		if !ok || other == c || other.Removed() {
			continue
		}
		found = append(found, other)
	}
	return found
}

// Overlapping returns the colliders on layers that collide with c whose boxes
// intersect c's box, in broadphase order.
func (c *Collider) Overlapping(m *LayerMatrix) []*Collider {
	var hits []*Collider
	for _, other := range c.Nearby(0, 0, m.Tags(c.Layer)...) {
		if !m.Collides(c.Layer, other.Layer) {
			continue
		}
		if c.bounds.Overlaps(other.bounds) {
			hits = append(hits, other)
		}
	}
	return hits
}
