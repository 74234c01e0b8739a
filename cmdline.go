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

import "strings"

// CommandLine is the read-only view of the host's command line the shim
// consumes. Hosts with their own argument-handling machinery adapt it to
// this interface; hosts without one can use [ParseCmdLine].
type CommandLine interface {
	// IsSwitchPresent reports whether the named switch appears on the
	// command line, returning its value (which may well be empty, as in
	// “-CPUCount:”). Matching is case-sensitive when caseSensitive is set,
	// case-folding otherwise.
	IsSwitchPresent(name string, caseSensitive bool) (value string, present bool)
}

// CmdLine is a parsed command line in the host's switch convention:
// switches start with “-” and carry an optional value after “:”, as in
// “-CPUCount:4” or plain “-w”. Arguments not starting with “-” are kept
// verbatim but never consulted by the shim.
type CmdLine struct {
	switches []cmdSwitch
	args     []string
}

type cmdSwitch struct {
	name  string
	value string
}

// ParseCmdLine parses raw arguments (without the program name) into a
// CmdLine.
func ParseCmdLine(args []string) *CmdLine {
	cl := &CmdLine{}
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '-' {
			cl.args = append(cl.args, arg)
			continue
		}
		name, value, _ := strings.Cut(arg[1:], ":")
		cl.switches = append(cl.switches, cmdSwitch{name: name, value: value})
	}
	return cl
}

// IsSwitchPresent implements [CommandLine]. The first matching switch wins.
func (c *CmdLine) IsSwitchPresent(name string, caseSensitive bool) (string, bool) {
	for _, sw := range c.switches {
		if sw.name == name || (!caseSensitive && strings.EqualFold(sw.name, name)) {
			return sw.value, true
		}
	}
	return "", false
}

// Args returns the non-switch arguments in their original order.
func (c *CmdLine) Args() []string {
	return c.args
}
