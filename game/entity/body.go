package entity

import "snake-pit/game/types"

// Body is a growable ring buffer of points. Index 0 is the tail, Len()-1
// the head. Pushing a head and popping a tail are O(1); the buffer only
// reallocates when it is full.
type Body struct {
	cells []types.Point
	tail  int // index of the tail in cells
	n     int
}

func NewBody(capacity int) *Body {
	if capacity < 1 {
		capacity = 1
	}
	return &Body{cells: make([]types.Point, capacity)}
}

func (b *Body) Len() int {
	return b.n
}

// At returns the i-th segment counted from the tail.
func (b *Body) At(i int) types.Point {
	if i < 0 || i >= b.n {
		panic("entity: body index out of range")
	}
	return b.cells[(b.tail+i)%len(b.cells)]
}

func (b *Body) Head() types.Point {
	return b.At(b.n - 1)
}

func (b *Body) Tail() types.Point {
	return b.At(0)
}

// PushHead appends p after the current head.
func (b *Body) PushHead(p types.Point) {
	if b.n == len(b.cells) {
		b.grow()
	}
	b.cells[(b.tail+b.n)%len(b.cells)] = p
	b.n++
}

// PopTail removes and returns the tail.
func (b *Body) PopTail() types.Point {
	if b.n == 0 {
		panic("entity: pop from empty body")
	}
	p := b.cells[b.tail]
	b.tail = (b.tail + 1) % len(b.cells)
	b.n--
	return p
}

// Contains reports whether p equals any segment.
func (b *Body) Contains(p types.Point) bool {
	for i := 0; i < b.n; i++ {
		if b.At(i) == p {
			return true
		}
	}
	return false
}

// Points returns a copy of the segments, tail first.
func (b *Body) Points() []types.Point {
	out := make([]types.Point, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

func (b *Body) grow() {
	cells := make([]types.Point, 2*len(b.cells))
	for i := 0; i < b.n; i++ {
		cells[i] = b.At(i)
	}
	b.cells = cells
	b.tail = 0
}
