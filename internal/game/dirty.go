package game

import "github.com/kamstrup/intmap"

// dirtySet accumulates board cells whose contents changed since the last
// render. Membership is tracked in an int-keyed map of packed coordinates;
// insertion order is preserved so the renderer repaints deterministically.
type dirtySet struct {
	seen  *intmap.Map[uint32, struct{}]
	order []Position
}

func newDirtySet() *dirtySet {
	return &dirtySet{
		seen:  intmap.New[uint32, struct{}](64),
		order: make([]Position, 0, 64),
	}
}

func (d *dirtySet) add(p Position) {
	k := p.key()
	if _, ok := d.seen.Get(k); ok {
		return
	}
	d.seen.Put(k, struct{}{})
	d.order = append(d.order, p)
}

// drain returns the accumulated positions and resets the set.
func (d *dirtySet) drain() []Position {
	if len(d.order) == 0 {
		return nil
	}
	out := d.order
	d.order = make([]Position, 0, 64)
	d.seen.Clear()
	return out
}
