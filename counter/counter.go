// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer safe for concurrent increment
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Set - counters created on first use by name
type Set struct {
	sync.RWMutex
	counters map[string]*Counter
}

// Increment - add 1 to the named counter
func (s *Set) Increment(name string) uint64 {
	s.RLock()
	c, ok := s.counters[name]
	s.RUnlock()

	if !ok {
		s.Lock()
		if nil == s.counters {
			s.counters = make(map[string]*Counter)
		}
		c, ok = s.counters[name]
		if !ok {
			c = new(Counter)
			s.counters[name] = c
		}
		s.Unlock()
	}
	return c.Increment()
}

// Get - value of the named counter, zero if never incremented
func (s *Set) Get(name string) uint64 {
	s.RLock()
	defer s.RUnlock()
	c, ok := s.counters[name]
	if !ok {
		return 0
	}
	return c.Uint64()
}

// Names - sorted counter names
func (s *Set) Names() []string {
	s.RLock()
	defer s.RUnlock()
	names := make([]string, 0, len(s.counters))
	for name := range s.counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
