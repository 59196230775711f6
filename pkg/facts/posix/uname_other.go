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

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package posix

import (
	"errors"
	"runtime"
)

// ErrUnameUnsupported is returned by Uname on platforms without uname(2).
var ErrUnameUnsupported = errors.New("uname is not supported on " + runtime.GOOS)

func uname() (Utsname, error) {
	return Utsname{}, ErrUnameUnsupported
}

func errnoOf(error) int {
	return 0
}
