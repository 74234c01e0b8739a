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

import (
	"errors"
	"fmt"
)

// Action is the outcome of the single-CPU affinity decision.
type Action int

const (
	// Skip leaves the process affinity untouched.
	Skip Action = iota
	// Pin confines the process to the lowest-numbered CPU available on the
	// machine.
	Pin
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Skip:
		return "skip"
	case Pin:
		return "pin"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Decide is the pure decision core: given the machine's system affinity mask
// and whether the user has explicitly overridden the CPU count, it returns
// the action to take. An explicit override always wins; an empty system mask
// offers nothing to select from, so it also leaves the affinity alone.
func Decide(system Mask, overridden bool) Action {
	if overridden || system == 0 {
		return Skip
	}
	return Pin
}

// AffinityAPI is the OS boundary the selector drives. The package-level
// [ProcessAffinity] and [PinProcess] functions provide the real
// implementation; tests substitute their own.
type AffinityAPI interface {
	// ProcessAffinity returns the process and system affinity masks.
	ProcessAffinity() (process, system Mask, err error)
	// PinProcess sets the process affinity to exactly the given mask.
	PinProcess(mask Mask) error
}

// osAffinity is the real operating-system boundary.
type osAffinity struct{}

func (osAffinity) ProcessAffinity() (Mask, Mask, error) { return ProcessAffinity() }
func (osAffinity) PinProcess(mask Mask) error           { return PinProcess(mask) }

// Selector selects exactly one CPU from the set available on the machine
// and makes it the process's exclusive affinity.
type Selector struct {
	os AffinityAPI
}

// NewSelector returns a Selector driving the given OS boundary, or the real
// operating system when api is nil.
func NewSelector(api AffinityAPI) *Selector {
	if api == nil {
		api = osAffinity{}
	}
	return &Selector{os: api}
}

// ApplySingleCoreAffinity queries the machine's system affinity mask, picks
// its lowest-numbered CPU and pins the process to it exclusively. On success
// it returns a human-readable message describing what was configured. Any
// failing OS call surfaces as an [OSError]; affinity is then left in its
// prior state, as a failed set is a single atomic syscall.
func (s *Selector) ApplySingleCoreAffinity() (string, error) {
	_, system, err := s.os.ProcessAffinity()
	if err != nil {
		return "", err
	}
	if Decide(system, false) != Pin {
		return "", &OSError{Op: "select CPU", Err: errors.New("system affinity mask is empty")}
	}
	// Select the first CPU that is enabled in the system mask instead of
	// hard-coding CPU #0, which may be offline or excluded on this machine.
	single := system.LowestSetBit()
	if err := s.os.PinProcess(single); err != nil {
		return "", err
	}
	cpu, _ := single.LowestCPU()
	return fmt.Sprintf("configured the process to use 1 CPU core (CPU #%d)", cpu), nil
}
