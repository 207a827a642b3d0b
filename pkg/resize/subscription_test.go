package resize

import (
	"testing"

	"github.com/rstone770/resize/pkg/dom"
	"github.com/rstone770/resize/pkg/dom/domtest"
)

func TestRegistryHandleAllocation(t *testing.T) {
	var r registry

	cb := func(dom.Element) {}
	for want := uint64(0); want < 5; want++ {
		got := r.insert(nil, cb, dom.Size{}, "viewport")
		if got != want {
			t.Errorf("insert() handle = %d, want %d", got, want)
		}
	}
	if r.len() != 5 {
		t.Errorf("len() = %d, want 5", r.len())
	}
}

func TestRegistryHandlesNeverReused(t *testing.T) {
	var r registry

	cb := func(dom.Element) {}
	first := r.insert(nil, cb, dom.Size{}, "viewport")
	r.remove(map[uint64]struct{}{first: {}})

	second := r.insert(nil, cb, dom.Size{}, "viewport")
	if second == first {
		t.Errorf("insert() after remove reused handle %d", first)
	}
	if second != first+1 {
		t.Errorf("insert() handle = %d, want %d", second, first+1)
	}
}

func TestRegistryRemovePreservesOrder(t *testing.T) {
	var r registry

	cb := func(dom.Element) {}
	elements := []*domtest.Element{
		domtest.NewElement("a", 1, 1),
		domtest.NewElement("b", 2, 2),
		domtest.NewElement("c", 3, 3),
	}
	var handles []uint64
	for _, el := range elements {
		handles = append(handles, r.insert(el, cb, el.Size(), el.Name()))
	}

	removed := r.remove(map[uint64]struct{}{handles[1]: {}})
	if removed != 1 {
		t.Fatalf("remove() = %d, want 1", removed)
	}

	subs := r.snapshot()
	if len(subs) != 2 {
		t.Fatalf("snapshot() returned %d records, want 2", len(subs))
	}
	if subs[0].handle != handles[0] || subs[1].handle != handles[2] {
		t.Errorf("remove() broke insertion order: handles %d, %d", subs[0].handle, subs[1].handle)
	}
}

func TestRegistryRemoveUnknownHandle(t *testing.T) {
	var r registry

	r.insert(nil, func(dom.Element) {}, dom.Size{}, "viewport")
	if removed := r.remove(map[uint64]struct{}{42: {}}); removed != 0 {
		t.Errorf("remove(unknown) = %d, want 0", removed)
	}
	if r.len() != 1 {
		t.Errorf("len() = %d after removing unknown handle, want 1", r.len())
	}
}

func TestRegistrySnapshotIsStable(t *testing.T) {
	var r registry

	cb := func(dom.Element) {}
	first := r.insert(nil, cb, dom.Size{}, "viewport")
	subs := r.snapshot()

	// Later mutation must not affect an existing snapshot.
	r.insert(nil, cb, dom.Size{}, "viewport")
	r.remove(map[uint64]struct{}{first: {}})

	if len(subs) != 1 || subs[0].handle != first {
		t.Error("snapshot changed after registry mutation")
	}
}
