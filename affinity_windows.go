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

//go:build windows

package singlecore

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	procGetCurrentProcess      = kernel32.NewProc("GetCurrentProcess")
	procGetProcessAffinityMask = kernel32.NewProc("GetProcessAffinityMask")
	procSetProcessAffinityMask = kernel32.NewProc("SetProcessAffinityMask")
)

func processAffinity() (Mask, Mask, error) {
	var process, system uintptr
	hProcess, _, _ := procGetCurrentProcess.Call()
	ret, _, err := procGetProcessAffinityMask.Call(hProcess,
		uintptr(unsafe.Pointer(&process)), uintptr(unsafe.Pointer(&system)))
	if ret == 0 {
		return 0, 0, &OSError{Op: "GetProcessAffinityMask", Err: err}
	}
	return Mask(process), Mask(system), nil
}

func pinProcess(mask Mask) error {
	if mask == 0 {
		return &OSError{Op: "SetProcessAffinityMask", Err: windows.ERROR_INVALID_PARAMETER}
	}
	hProcess, _, _ := procGetCurrentProcess.Call()
	ret, _, err := procSetProcessAffinityMask.Call(hProcess, uintptr(mask))
	if ret == 0 {
		return &OSError{Op: "SetProcessAffinityMask", Err: err}
	}
	return nil
}
