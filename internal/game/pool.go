package game

// Pool is a fixed-capacity slot pool with a free list. Slots are reused
// in LIFO order; iteration visits only live slots. Capacity bounds the
// worst-case per-tick work for stars and projectiles.
type Pool[T any] struct {
	items  []T
	active []bool
	free   []int
}

// NewPool creates a pool with the given capacity.
func NewPool[T any](capacity int) *Pool[T] {
	free := make([]int, capacity)
	for i := range free {
		free[i] = capacity - 1 - i
	}
	return &Pool[T]{
		items:  make([]T, capacity),
		active: make([]bool, capacity),
		free:   free,
	}
}

// Alloc stores v in a free slot and returns its index, or -1 if full.
func (p *Pool[T]) Alloc(v T) int {
	if len(p.free) == 0 {
		return -1
	}
	i := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.items[i] = v
	p.active[i] = true
	return i
}

// Release returns slot i to the free list. Releasing an inactive or
// out-of-range slot is a no-op.
func (p *Pool[T]) Release(i int) {
	if i < 0 || i >= len(p.items) || !p.active[i] {
		return
	}
	p.active[i] = false
	p.free = append(p.free, i)
}

// Get returns a pointer to the live value in slot i, or nil.
func (p *Pool[T]) Get(i int) *T {
	if i < 0 || i >= len(p.items) || !p.active[i] {
		return nil
	}
	return &p.items[i]
}

// Len reports the number of live slots.
func (p *Pool[T]) Len() int {
	return len(p.items) - len(p.free)
}

// Each calls fn with the index and a pointer to every live value.
// fn may mutate the value but must not Alloc or Release.
func (p *Pool[T]) Each(fn func(i int, v *T)) {
	for i := range p.items {
		if p.active[i] {
			fn(i, &p.items[i])
		}
	}
}
