// Copyright 2025 Kai Mottola.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

//go:build !linux && !windows

package singlecore

import (
	"errors"
	"runtime"
)

var errUnsupported = errors.New("process CPU affinity is not supported on " + runtime.GOOS)

func processAffinity() (Mask, Mask, error) {
	return 0, 0, &OSError{Op: "query process affinity", Err: errUnsupported}
}

func pinProcess(Mask) error {
	return &OSError{Op: "set process affinity", Err: errUnsupported}
}
