package loadservice

import "sync"

// keyLock serializes work per key and frees a key's mutex once nobody holds it.
type keyLock struct {
	mutex sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: map[string]*refMutex{}}
}

// Lock blocks until key is free and returns the matching unlock.
func (k *keyLock) Lock(key string) func() {
	k.mutex.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mutex.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mutex.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mutex.Unlock()
	}
}

func (k *keyLock) size() int {
	k.mutex.Lock()
	defer k.mutex.Unlock()
	return len(k.locks)
}
