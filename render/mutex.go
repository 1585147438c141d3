package render

import "sync"

// Owner identifies a lock holder. The menu loop and the emulation loop each
// use their own value.
type Owner string

// Mutex guards the frame flip. It is reentrant for the holding owner: every
// Lock must be matched by an Unlock and the lock is released when the count
// drops to zero. Other owners block until then.
type Mutex struct {
	mu    sync.Mutex
	cond  *sync.Cond
	owner Owner
	count int
}

func NewMutex() *Mutex {
	m := &Mutex{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

func (m *Mutex) Lock(o Owner) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.count > 0 && m.owner != o {
		m.cond.Wait()
	}
	m.owner = o
	m.count++
}

// TryLock acquires the lock without blocking.
func (m *Mutex) TryLock(o Owner) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.count > 0 && m.owner != o {
		return false
	}
	m.owner = o
	m.count++
	return true
}

// Unlock releases one level. Unlocking a mutex o does not hold panics, the
// same as sync.Mutex.
func (m *Mutex) Unlock(o Owner) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.count == 0 || m.owner != o {
		panic("render: unlock of unheld mutex by " + string(o))
	}
	m.count--
	if m.count == 0 {
		m.owner = ""
		m.cond.Broadcast()
	}
}

// Depth returns how many times the current owner holds the lock.
func (m *Mutex) Depth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
