package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	The objects and items this station owns.
 *
 * Description:	Keyed by name.  Everything goes through the mutex,
 *		and the scheduler holds it for a whole sweep because it
 *		updates the retransmission fields in place.
 *
 *		Callers outside the package only ever get copies.
 *
 *------------------------------------------------------------------*/

import (
	"maps"
	"slices"
	"sync"
)

type Store struct {
	mu      sync.Mutex
	objects map[string]*Object
}

func NewStore() *Store {
	return &Store{objects: make(map[string]*Object)}
}

// Put adds or replaces an object.  The store keeps its own copy.
func (s *Store) Put(o *Object) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[o.CallSign] = o.Clone()
}

func (s *Store) Get(name string) (*Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var o, ok = s.objects[name]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

// Remove takes an object out and returns it.
func (s *Store) Remove(name string) (*Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var o, ok = s.objects[name]
	if ok {
		delete(s.objects, name)
	}
	return o, ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.objects)
}

// List gives copies of everything, sorted by name.
func (s *Store) List() []*Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list = make([]*Object, 0, len(s.objects))
	for _, name := range slices.Sorted(maps.Keys(s.objects)) {
		list = append(list, s.objects[name].Clone())
	}
	return list
}

// update runs fn on the stored object under the lock.
func (s *Store) update(name string, fn func(*Object)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var o, ok = s.objects[name]
	if ok {
		fn(o)
	}
	return ok
}

// sweep visits every object, in name order, with the lock held throughout.
func (s *Store) sweep(fn func(*Object)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range slices.Sorted(maps.Keys(s.objects)) {
		fn(s.objects[name])
	}
	return len(s.objects)
}
