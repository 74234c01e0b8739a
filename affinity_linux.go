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

//go:build linux

package singlecore

import (
	"bytes"
	"os"

	"golang.org/x/sys/unix"
)

// onlineCPUsPath is the kernel's textual list of online CPUs, such as
// “0-7,9”. Linux has no single syscall reporting a system-wide affinity
// mask, so the system mask is derived from this pseudo file instead.
const onlineCPUsPath = "/sys/devices/system/cpu/online"

func processAffinity() (Mask, Mask, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(os.Getpid(), &set); err != nil {
		return 0, 0, &OSError{Op: "sched_getaffinity", Err: err}
	}
	system, err := onlineMask()
	if err != nil {
		return 0, 0, err
	}
	return maskFromCPUSet(&set), system, nil
}

func pinProcess(mask Mask) error {
	if mask == 0 {
		return &OSError{Op: "sched_setaffinity", Err: unix.EINVAL}
	}
	var set unix.CPUSet
	set.Zero()
	for cpu := uint(0); cpu < MaskBits; cpu++ {
		if mask.IsSet(cpu) {
			set.Set(int(cpu))
		}
	}
	// sched_setaffinity addresses the thread-group leader here; threads
	// spawned afterwards inherit the mask, which suffices this early in the
	// process lifetime.
	if err := unix.SchedSetaffinity(os.Getpid(), &set); err != nil {
		return &OSError{Op: "sched_setaffinity", Err: err}
	}
	return nil
}

// onlineMask reads and parses the machine's online CPU list.
func onlineMask() (Mask, error) {
	b, err := os.ReadFile(onlineCPUsPath)
	if err != nil {
		return 0, &OSError{Op: "read " + onlineCPUsPath, Err: err}
	}
	m, err := ParseMask(bytes.TrimSuffix(b, []byte("\n")))
	if err != nil {
		return 0, &OSError{Op: "parse " + onlineCPUsPath, Err: err}
	}
	return m, nil
}

// maskFromCPUSet folds a kernel CPU set into a pointer-sized Mask, dropping
// CPUs beyond the mask width.
func maskFromCPUSet(set *unix.CPUSet) Mask {
	var m Mask
	for cpu := uint(0); cpu < MaskBits; cpu++ {
		if set.IsSet(int(cpu)) {
			m |= 1 << cpu
		}
	}
	return m
}
