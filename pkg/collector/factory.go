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

package collector

import (
	"log/slog"
)

// Factory creates collectors.
type Factory interface {
	CreateFactsCollector(names ...string) Collector
}

// Option is a functional option for configuring DefaultFactory instances.
type Option func(*DefaultFactory)

// WithVersion sets the tool version recorded by collectors.
func WithVersion(version string) Option {
	return func(f *DefaultFactory) {
		f.Version = version
	}
}

// WithLogger sets the logger handed to fact resolvers.
func WithLogger(logger *slog.Logger) Option {
	return func(f *DefaultFactory) {
		f.Logger = logger
	}
}

// DefaultFactory creates collectors backed by the resolvers of the running platform.
type DefaultFactory struct {
	Version string
	Logger  *slog.Logger
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateFactsCollector creates a collector for the named facts, or all facts
// when names is empty.
func (f *DefaultFactory) CreateFactsCollector(names ...string) Collector {
	return &FactsCollector{
		Resolvers: PlatformResolvers(f.Logger),
		Names:     names,
		Version:   f.Version,
	}
}
