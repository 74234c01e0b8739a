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

// singlecore is a demo host: it runs the shim's startup hook against its own
// command line and then prints the resulting process and system CPU lists.
// Pass -CPUCount:N to watch the shim defer to the explicit override.
package main

import (
	"fmt"
	"os"

	"github.com/kmottola/singlecore"
)

func main() {
	cfg, err := singlecore.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "singlecore: configuration:", err)
		os.Exit(1)
	}
	log, err := singlecore.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "singlecore: logging:", err)
		os.Exit(1)
	}

	shim := singlecore.NewShim(cfg, log, nil)
	shim.OnStart(singlecore.ParseCmdLine(os.Args[1:]))

	process, system, err := singlecore.ProcessAffinity()
	if err != nil {
		fmt.Fprintln(os.Stderr, "singlecore:", err)
		os.Exit(1)
	}
	fmt.Printf("process CPUs: %s\n", process)
	fmt.Printf("system CPUs:  %s\n", system)
}
