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

package singlecore

// OSError reports a failed operating-system call in the affinity path,
// carrying the OS-level diagnostic. It is the only error kind this package
// produces of its own.
type OSError struct {
	Op  string // the OS operation that failed, such as "sched_setaffinity"
	Err error  // the OS-level diagnostic
}

func (e *OSError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OSError) Unwrap() error {
	return e.Err
}

// ProcessAffinity returns the affinity Mask of the current process together
// with the Mask of all CPUs available on the machine. Platform-specific
// implementations live in separate files (affinity_linux.go,
// affinity_windows.go, …) guarded by build tags.
func ProcessAffinity() (process, system Mask, err error) {
	return processAffinity()
}

// PinProcess sets the current process's CPU affinity to exactly the given
// mask. It is an error trying to pin to the empty mask.
func PinProcess(mask Mask) error {
	return pinProcess(mask)
}
