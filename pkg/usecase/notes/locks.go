package notes

import (
	"sync"

	"github.com/m-mizutani/minuta/pkg/model"
)

// keyedMutex serializes metadata read-modify-write per meeting, so two
// concurrent regenerations in different languages cannot drop each other's
// language registration. Entries are never evicted; the map is bounded by
// the number of meetings touched by one process lifetime.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[model.MeetingID]*sync.Mutex
}

// lock acquires the mutex for id and returns its unlock function.
func (k *keyedMutex) lock(id model.MeetingID) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = map[model.MeetingID]*sync.Mutex{}
	}
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
