package inventory

import (
	"iter"
	"maps"
	"slices"
)

// Store maps item ids to items. The zero value is not usable; use NewStore.
//
// Store is not safe for concurrent use.
type Store struct {
	items map[int]Item
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{items: make(map[int]Item)}
}

// Get returns the item stored under id.
func (s *Store) Get(id int) (Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

// Put inserts the item or overwrites the one with the same id.
func (s *Store) Put(item Item) {
	s.items[item.ID] = item
}

// Remove deletes the item under id and returns it.
func (s *Store) Remove(id int) (Item, bool) {
	it, ok := s.items[id]
	if !ok {
		return Item{}, false
	}

	delete(s.items, id)

	return it, true
}

// Len reports the number of stored items.
func (s *Store) Len() int { return len(s.items) }

// Snapshot returns a read-only view of the current items in ascending id
// order. Ids are captured when Snapshot is called; each range over the
// returned sequence yields the items still present under those ids.
func (s *Store) Snapshot() iter.Seq[Item] {
	ids := slices.Sorted(maps.Keys(s.items))

	return func(yield func(Item) bool) {
		for _, id := range ids {
			it, ok := s.items[id]
			if !ok {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Items collects Snapshot into a slice.
func (s *Store) Items() []Item {
	return slices.Collect(s.Snapshot())
}
