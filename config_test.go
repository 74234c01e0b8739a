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
	"os"
	"path/filepath"

	ginkgo "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = ginkgo.Describe("shim configuration", func() {

	ginkgo.It("defaults to stderr logging at info level, enabled", func() {
		cfg := Successful(FromEnv())
		Expect(cfg.LogPath).To(BeEmpty())
		Expect(cfg.LogLevel).To(Equal("info"))
		Expect(cfg.Disable).To(BeFalse())
		Expect(cfg.CapGoMaxProcs).To(BeTrue())
	})

	ginkgo.It("picks up SINGLECORE_ environment variables", func() {
		ginkgo.GinkgoT().Setenv("SINGLECORE_LOG_LEVEL", "debug")
		ginkgo.GinkgoT().Setenv("SINGLECORE_DISABLE", "true")
		cfg := Successful(FromEnv())
		Expect(cfg.LogLevel).To(Equal("debug"))
		Expect(cfg.Disable).To(BeTrue())
	})

	ginkgo.It("rejects malformed values", func() {
		ginkgo.GinkgoT().Setenv("SINGLECORE_DISABLE", "fortytwo")
		Expect(FromEnv()).Error().To(HaveOccurred())
	})

	ginkgo.It("builds a logger writing to the configured file, with a header", func() {
		logpath := filepath.Join(ginkgo.GinkgoT().TempDir(), "singlecore.log")
		log := Successful(NewLogger(Config{LogPath: logpath, LogLevel: "info"}))
		log.Info().Msg("canary")
		contents := Successful(os.ReadFile(logpath))
		Expect(string(contents)).To(ContainSubstring(Name + " v" + SemVersion))
		Expect(string(contents)).To(ContainSubstring("canary"))
	})

	ginkgo.It("rejects an unknown log level", func() {
		Expect(NewLogger(Config{LogLevel: "loudest"})).Error().To(HaveOccurred())
	})

	ginkgo.It("suppresses lines below the configured level", func() {
		logpath := filepath.Join(ginkgo.GinkgoT().TempDir(), "singlecore.log")
		log := Successful(NewLogger(Config{LogPath: logpath, LogLevel: "error"}))
		log.Info().Msg("should not appear")
		contents := Successful(os.ReadFile(logpath))
		Expect(string(contents)).NotTo(ContainSubstring("should not appear"))
	})

})
