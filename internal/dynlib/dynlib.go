// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dynlib resolves platform library entry points once per process.
//
// A Loader runs its resolve function the first time Get is called. All
// concurrent first callers block until that single call returns; the result,
// including a failure, is then fixed for the life of the process.
package dynlib

import (
	"errors"
	"sync"
)

// ErrNotFound reports that a library or symbol is absent from the system.
var ErrNotFound = errors.New("dynlib: library or symbol not found")

// Loader lazily resolves a value of type T exactly once.
type Loader[T any] struct {
	once    sync.Once
	resolve func() (T, error)
	val     T
	err     error
}

// New returns a Loader that will call resolve on first use.
func New[T any](resolve func() (T, error)) *Loader[T] {
	return &Loader[T]{resolve: resolve}
}

// Get returns the resolved value, resolving it on the first call.
func (l *Loader[T]) Get() (T, error) {
	l.once.Do(func() {
		l.val, l.err = l.resolve()
	})
	return l.val, l.err
}

// Available reports whether resolution succeeded.
func (l *Loader[T]) Available() bool {
	_, err := l.Get()
	return err == nil
}

// FirstExisting returns the first candidate for which open succeeds, or the
// error from the last attempt. Empty candidates are skipped.
func FirstExisting[H any](candidates []string, open func(path string) (H, error)) (H, string, error) {
	var zero H
	lastErr := ErrNotFound
	for _, c := range candidates {
		if c == "" {
			continue
		}
		h, err := open(c)
		if err == nil {
			return h, c, nil
		}
		lastErr = err
	}
	return zero, "", lastErr
}
