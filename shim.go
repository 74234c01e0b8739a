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
	"runtime"
	"sync"

	"github.com/rs/zerolog"
)

// CPUCountSwitch is the host command-line switch that overrides the shim:
// the host applies its own CPU-count argument before plugins load, so an
// explicit user choice must not be second-guessed.
const CPUCountSwitch = "CPUCount"

// ShouldApplySingleCoreAffinity reports whether the shim should configure
// single-CPU affinity at all, that is, whether the command line lacks the
// CPUCount override switch. When the switch is present its value is returned
// for diagnostic logging. Switch matching is case-sensitive, per the host's
// convention.
func ShouldApplySingleCoreAffinity(cmdline CommandLine) (overrideValue string, apply bool) {
	value, present := cmdline.IsSwitchPresent(CPUCountSwitch, true)
	return value, !present
}

// Shim binds the affinity selector to a host's plugin lifecycle. Its
// zero-ish construction via [NewShim] keeps the OS boundary and log sink
// replaceable.
type Shim struct {
	cfg  Config
	log  zerolog.Logger
	sel  *Selector
	once sync.Once
}

// NewShim returns a Shim with the given configuration and log sink, driving
// the given OS boundary (the real operating system when api is nil).
func NewShim(cfg Config, log zerolog.Logger, api AffinityAPI) *Shim {
	return &Shim{
		cfg: cfg,
		log: log,
		sel: NewSelector(api),
	}
}

// OnStart is the host's startup hook. It configures single-CPU affinity at
// most once per process; further calls are no-ops. It always reports
// successful plugin initialization: a failed affinity configuration is
// logged and absorbed, and must never destabilize the host's startup.
func (s *Shim) OnStart(cmdline CommandLine) bool {
	s.once.Do(func() {
		s.configure(cmdline)
	})
	return true
}

// configure runs the override gate and, when not overridden, the selector.
// The override check strictly precedes any OS affinity call.
func (s *Shim) configure(cmdline CommandLine) {
	if s.cfg.Disable {
		s.log.Info().Msgf("skipped because %s_DISABLE is set", envPrefix)
		return
	}
	if value, apply := ShouldApplySingleCoreAffinity(cmdline); !apply {
		s.log.Info().Msgf("skipped because the command line contains -%s:%s",
			CPUCountSwitch, value)
		return
	}
	msg, err := s.sel.ApplySingleCoreAffinity()
	if err != nil {
		s.log.Error().Msgf("an OS error occurred when configuring the process to use 1 CPU: %s", err)
		return
	}
	s.log.Info().Msg(msg)
	s.capGoMaxProcs()
}

// capGoMaxProcs caps the Go runtime to a single P once the process is
// confined to a single CPU, so the scheduler does not multiplex goroutines
// over Ps that can never run in parallel anyway.
func (s *Shim) capGoMaxProcs() {
	if !s.cfg.CapGoMaxProcs {
		return
	}
	previous := runtime.GOMAXPROCS(1)
	s.log.Debug().Int("previous", previous).Int("current", 1).Msg("capped GOMAXPROCS")
}
