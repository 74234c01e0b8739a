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
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix of all environment variables consumed by the shim,
// as in SINGLECORE_LOG_PATH.
const envPrefix = "SINGLECORE"

// envFileName is an optional dotenv file picked up from the working
// directory, so the shim can be configured without editing the host's
// environment block.
const envFileName = "singlecore.env"

// Config holds the shim's own configuration, separate from the host's
// command line.
type Config struct {
	// LogPath is the file the shim logs to; empty logs to stderr.
	LogPath string `envconfig:"LOG_PATH" default:""`
	// LogLevel is the minimum level logged: trace, debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Disable skips the affinity configuration entirely, for hosts whose
	// command line cannot be extended with -CPUCount.
	Disable bool `envconfig:"DISABLE" default:"false"`
	// CapGoMaxProcs additionally caps the Go runtime to a single P after a
	// successful pin. Meaningless for non-Go hosts.
	CapGoMaxProcs bool `envconfig:"CAP_GOMAXPROCS" default:"true"`
}

// FromEnv returns the shim configuration from the process environment,
// after loading the optional env file. A missing env file is not an error.
func FromEnv() (Config, error) {
	if err := godotenv.Load(envFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
