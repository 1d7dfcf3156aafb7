package dynarr

import "errors"

var (
	errCloneFailed    = errors.New("clone failed")
	errRelocateFailed = errors.New("relocate failed")
)

// ledger counts lifecycle events shared by a family of test elements.
type ledger struct {
	clones        int
	releases      int
	relocations   int
	failClone     int // fail the n-th clone, 0 never
	failRelocate  int // fail the n-th relocation, 0 never
	releasedSlots []int
}

// tracked is a resource-owning element: it clones through the ledger and
// reports its release.
type tracked struct {
	id int
	l  *ledger
}

func (t *tracked) Clone() (tracked, error) {
	t.l.clones++

	if t.l.failClone > 0 && t.l.clones >= t.l.failClone {
		return tracked{}, errCloneFailed
	}

	return tracked{id: t.id, l: t.l}, nil
}

func (t *tracked) Release() {
	if t.l == nil {
		return
	}

	t.l.releases++
	t.l.releasedSlots = append(t.l.releasedSlots, t.id)
}

func trackedOf(l *ledger, ids ...int) Array[tracked] {
	vals := make([]tracked, len(ids))

	for i, id := range ids {
		vals[i] = tracked{id: id, l: l}
	}

	return Of(vals...)
}

func ids(a *Array[tracked]) (out []int) {
	for v := range a.Values() {
		out = append(out, v.id)
	}

	return
}

// pinned holds a pointer to itself, so it must be relocated explicitly.
type pinned struct {
	val  int
	self *pinned
	l    *ledger
}

func (p *pinned) Relocate(dst *pinned) error {
	if p.l != nil {
		p.l.relocations++

		if p.l.failRelocate > 0 && p.l.relocations >= p.l.failRelocate {
			return errRelocateFailed
		}
	}

	*dst = pinned{val: p.val, l: p.l}
	dst.self = dst
	return nil
}

func pinnedOf(l *ledger, vals ...int) Array[pinned] {
	ps := make([]pinned, len(vals))

	for i, v := range vals {
		ps[i] = pinned{val: v, l: l}
	}

	return Of(ps...)
}

func pinnedValues(a *Array[pinned]) (out []int) {
	for i := 0; i < a.Len(); i++ {
		out = append(out, a.Ref(i).val)
	}

	return
}

func pinnedIntact(a *Array[pinned]) bool {
	for i := 0; i < a.Len(); i++ {
		if p := a.Ref(i); p.self != p {
			return false
		}
	}

	return true
}
