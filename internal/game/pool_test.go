package game

import "testing"

func TestPoolAllocReleaseReuse(t *testing.T) {
	p := NewPool[int](3)

	a := p.Alloc(10)
	b := p.Alloc(20)
	c := p.Alloc(30)
	if a < 0 || b < 0 || c < 0 {
		t.Fatalf("allocations within capacity failed: %d %d %d", a, b, c)
	}
	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}

	if got := p.Alloc(40); got != -1 {
		t.Fatalf("Alloc past capacity = %d, want -1", got)
	}

	p.Release(b)
	if p.Len() != 2 {
		t.Fatalf("Len after release = %d, want 2", p.Len())
	}

	d := p.Alloc(40)
	if d != b {
		t.Fatalf("freed slot not reused: got %d, want %d", d, b)
	}
	if *p.Get(d) != 40 {
		t.Fatalf("Get(%d) = %d, want 40", d, *p.Get(d))
	}
}

func TestPoolEachVisitsActiveOnly(t *testing.T) {
	p := NewPool[int](4)
	i0 := p.Alloc(1)
	p.Alloc(2)
	p.Alloc(3)
	p.Release(i0)

	sum := 0
	count := 0
	p.Each(func(_ int, v *int) {
		sum += *v
		count++
	})
	if count != 2 || sum != 5 {
		t.Fatalf("Each visited count=%d sum=%d, want 2 and 5", count, sum)
	}
}
