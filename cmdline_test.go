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
	ginkgo "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
)

var _ = ginkgo.Describe("command lines", func() {

	ginkgo.It("finds a switch with its value", func() {
		cl := ParseCmdLine([]string{"-CPUCount:4", "save.dat"})
		value, present := cl.IsSwitchPresent("CPUCount", true)
		Expect(present).To(BeTrue())
		Expect(value).To(Equal("4"))
	})

	ginkgo.It("finds a switch without a value", func() {
		cl := ParseCmdLine([]string{"-CPUCount"})
		value, present := cl.IsSwitchPresent("CPUCount", true)
		Expect(present).To(BeTrue())
		Expect(value).To(BeEmpty())
	})

	ginkgo.It("reports a switch with an explicitly empty value as present", func() {
		cl := ParseCmdLine([]string{"-CPUCount:"})
		value, present := cl.IsSwitchPresent("CPUCount", true)
		Expect(present).To(BeTrue())
		Expect(value).To(BeEmpty())
	})

	DescribeTable("case sensitivity",
		func(arg string, name string, caseSensitive bool, expected bool) {
			_, present := ParseCmdLine([]string{arg}).IsSwitchPresent(name, caseSensitive)
			Expect(present).To(Equal(expected))
		},
		Entry(nil, "-CPUCount:4", "CPUCount", true, true),
		Entry(nil, "-cpucount:4", "CPUCount", true, false),
		Entry(nil, "-cpucount:4", "CPUCount", false, true),
		Entry(nil, "-CPUCOUNT", "cpucount", false, true),
	)

	ginkgo.It("never mistakes plain arguments for switches", func() {
		cl := ParseCmdLine([]string{"CPUCount", "-", "save.dat"})
		_, present := cl.IsSwitchPresent("CPUCount", true)
		Expect(present).To(BeFalse())
		Expect(cl.Args()).To(Equal([]string{"CPUCount", "-", "save.dat"}))
	})

	ginkgo.It("lets the first matching switch win", func() {
		cl := ParseCmdLine([]string{"-CPUCount:2", "-CPUCount:8"})
		value, _ := cl.IsSwitchPresent("CPUCount", true)
		Expect(value).To(Equal("2"))
	})

})
