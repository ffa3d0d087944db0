// Package utils
package utils

import (
	"sync"
	"time"
)

// CachedValue caches the getter result for cachedTime, a non-positive cachedTime never expires
type CachedValue[T any] struct {
	generateTime time.Time
	cachedData   *T
	mu           sync.RWMutex
	cachedTime   time.Duration
	getter       func() *T
}

func NewCachedValue[T any](cachedTime time.Duration, getter func() *T) *CachedValue[T] {
	return &CachedValue[T]{time.Now(), nil, sync.RWMutex{}, cachedTime, getter}
}

func (cachedValue *CachedValue[T]) valid() bool {
	if cachedValue.cachedData == nil {
		return false
	}
	return cachedValue.cachedTime <= 0 || time.Since(cachedValue.generateTime) <= cachedValue.cachedTime
}

func (cachedValue *CachedValue[T]) GetValue() *T {
	cachedValue.mu.RLock()
	if cachedValue.valid() {
		defer cachedValue.mu.RUnlock()
		return cachedValue.cachedData
	}
	cachedValue.mu.RUnlock()

	cachedValue.mu.Lock()
	defer cachedValue.mu.Unlock()

	if cachedValue.valid() {
		return cachedValue.cachedData
	}

	cachedValue.cachedData = cachedValue.getter()
	cachedValue.generateTime = time.Now()

	return cachedValue.cachedData
}

func (cachedValue *CachedValue[T]) SetValue(value *T) {
	cachedValue.mu.Lock()
	defer cachedValue.mu.Unlock()
	cachedValue.cachedData = value
	cachedValue.generateTime = time.Now()
}
