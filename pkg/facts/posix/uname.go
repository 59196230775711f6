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

package posix

// Utsname is the kernel identification report returned by uname(2).
type Utsname struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

// UnameFunc queries the operating system for its identification report.
type UnameFunc func() (Utsname, error)

// Uname queries the running kernel via uname(2). On platforms without
// uname it always fails.
func Uname() (Utsname, error) {
	return uname()
}

// Errno returns the numeric OS error code carried by err, or 0 when err
// does not carry one.
func Errno(err error) int {
	return errnoOf(err)
}
