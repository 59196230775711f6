// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package facts

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	apperrors "github.com/NVIDIA/nodefacts/pkg/errors"
)

// Collection is the store of all facts gathered in one run. It owns the
// resolvers that populate it; resolvers only read from it.
type Collection struct {
	mu        sync.RWMutex
	facts     map[string]any
	resolvers []Resolver
}

// NewCollection returns an empty collection that will run the given
// resolvers, in order, when Resolve is called.
func NewCollection(resolvers ...Resolver) *Collection {
	return &Collection{
		facts:     make(map[string]any, len(resolvers)),
		resolvers: resolvers,
	}
}

// Add stores a record under the given fact name, replacing any previous value.
func (c *Collection) Add(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.facts[name] = value
}

// Get returns the record stored under name.
func (c *Collection) Get(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.facts[name]
	return v, ok
}

// Lookup is like Get but returns a NOT_FOUND structured error for unknown names.
func (c *Collection) Lookup(name string) (any, error) {
	v, ok := c.Get(name)
	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			fmt.Sprintf("fact %q not found", name),
			map[string]any{"fact": name, "available": c.Names()})
	}
	return v, nil
}

// Names returns the sorted names of all stored facts.
func (c *Collection) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.facts))
	for k := range c.facts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Facts returns a shallow copy of all stored facts.
func (c *Collection) Facts() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]any, len(c.facts))
	for k, v := range c.facts {
		out[k] = v
	}
	return out
}

// Resolve runs every registered resolver in registration order and stores
// each returned record under the resolver's name. Resolvers themselves never
// fail; the only error is a canceled or expired context, checked between
// resolvers.
func (c *Collection) Resolve(ctx context.Context) error {
	start := time.Now()
	defer func() {
		collectionDuration.Observe(time.Since(start).Seconds())
	}()

	for _, r := range c.resolvers {
		if err := ctx.Err(); err != nil {
			collectionRunsTotal.WithLabelValues("canceled").Inc()
			return apperrors.WrapWithContext(apperrors.ErrCodeTimeout,
				"fact collection interrupted", err,
				map[string]any{"resolver": r.Name()})
		}

		resolverStart := time.Now()
		value := r.Resolve(c)
		resolverDuration.WithLabelValues(r.Name()).Observe(time.Since(resolverStart).Seconds())

		c.Add(r.Name(), value)
		slog.Debug("resolved fact", slog.String("fact", r.Name()))
	}

	collectionRunsTotal.WithLabelValues("success").Inc()
	return nil
}

// Typed returns the record stored under name if it has type T.
func Typed[T any](c *Collection, name string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	v, ok := c.Get(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// OperatingSystemOf returns the resolved operating system record, if any.
func OperatingSystemOf(c *Collection) (OperatingSystemData, bool) {
	return Typed[OperatingSystemData](c, FactOperatingSystem)
}

// KernelOf returns the resolved kernel record, if any.
func KernelOf(c *Collection) (KernelData, bool) {
	return Typed[KernelData](c, FactKernel)
}
