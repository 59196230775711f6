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

// Fact category names under which resolved records are stored.
const (
	FactOperatingSystem = "os"
	FactKernel          = "kernel"
)

// Names is the list of all fact categories known to this package.
var Names = []string{
	FactKernel,
	FactOperatingSystem,
}

// Release describes an operating system release.
type Release struct {
	Full  string `json:"full,omitempty" yaml:"full,omitempty"`
	Major string `json:"major,omitempty" yaml:"major,omitempty"`
	Minor string `json:"minor,omitempty" yaml:"minor,omitempty"`
}

// OperatingSystemData is the record produced for the "os" fact category.
type OperatingSystemData struct {
	// Name is the operating system name (e.g. Ubuntu).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Family is the kernel family (e.g. Linux, Darwin).
	Family string `json:"family,omitempty" yaml:"family,omitempty"`

	// Release is the operating system release.
	Release Release `json:"release,omitzero" yaml:"release,omitempty"`

	// Hardware is the machine hardware model as reported by the kernel (e.g. x86_64).
	Hardware string `json:"hardware" yaml:"hardware"`

	// Architecture is the instruction set exposed to software. Defaults to Hardware.
	Architecture string `json:"architecture" yaml:"architecture"`
}

// KernelData is the record produced for the "kernel" fact category.
type KernelData struct {
	// Name is the kernel name (e.g. Linux).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Release is the kernel release (e.g. 6.8.0-45-generic).
	Release string `json:"release,omitempty" yaml:"release,omitempty"`

	// Version is the kernel build version string.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// OperatingSystemResolver collects operating system facts.
// Implementations never fail: partial data is returned instead.
type OperatingSystemResolver interface {
	CollectData(facts *Collection) OperatingSystemData
}

// KernelResolver collects kernel facts.
type KernelResolver interface {
	CollectData(facts *Collection) KernelData
}

// Resolver is the driver-facing view of a typed resolver: it produces the
// record stored under one fact category.
type Resolver interface {
	// Name returns the fact category the record is stored under.
	Name() string

	// Resolve returns a freshly built record. It must not store it.
	Resolve(facts *Collection) any
}

type operatingSystemResolver struct {
	r OperatingSystemResolver
}

func (o operatingSystemResolver) Name() string { return FactOperatingSystem }

func (o operatingSystemResolver) Resolve(facts *Collection) any {
	return o.r.CollectData(facts)
}

type kernelResolver struct {
	r KernelResolver
}

func (k kernelResolver) Name() string { return FactKernel }

func (k kernelResolver) Resolve(facts *Collection) any {
	return k.r.CollectData(facts)
}

// OperatingSystem adapts an OperatingSystemResolver for the collection driver.
func OperatingSystem(r OperatingSystemResolver) Resolver {
	return operatingSystemResolver{r: r}
}

// Kernel adapts a KernelResolver for the collection driver.
func Kernel(r KernelResolver) Resolver {
	return kernelResolver{r: r}
}
