// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import "sync"

// observable gives a store a subscribe/notify contract: observers are
// invoked after every persisted mutation so views can re-render.
type observable struct {
	mu sync.RWMutex

	subMu sync.Mutex
	next  int
	subs  map[int]func()
}

// Subscribe registers fn to run after each mutation and returns an
// unsubscribe function. fn runs on the mutating goroutine while the
// store lock is held; it must not call back into the store.
func (o *observable) Subscribe(fn func()) func() {
	o.subMu.Lock()
	defer o.subMu.Unlock()
	if o.subs == nil {
		o.subs = make(map[int]func())
	}
	id := o.next
	o.next++
	o.subs[id] = fn
	return func() {
		o.subMu.Lock()
		defer o.subMu.Unlock()
		delete(o.subs, id)
	}
}

func (o *observable) notify() {
	o.subMu.Lock()
	fns := make([]func(), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
