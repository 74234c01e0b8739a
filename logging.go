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
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the shim's log sink per the given configuration and
// writes the log header identifying shim name and version. With an empty
// LogPath the log goes to stderr. The log file, if any, stays open for the
// remaining process lifetime, like the affinity it documents.
func NewLogger(cfg Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	var w io.Writer = os.Stderr
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), err
		}
		w = f
	}
	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Info().Msgf("%s v%s", Name, SemVersion)
	return log, nil
}
