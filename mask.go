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
	"math/bits"
	"strings"

	"github.com/thediveo/faf"
)

// Mask is a CPU affinity bitmask: bit i set means logical CPU i may run the
// process, or exists on the machine when the mask describes the system. It
// is pointer-sized, mirroring what the process affinity OS calls operate on,
// so on hosts with more logical CPUs than mask bits only the first [MaskBits]
// CPUs are representable.
type Mask uintptr

// MaskBits is the width of a Mask in bits.
const MaskBits = bits.UintSize

// MaskOf returns the Mask with exactly the bits of the given CPUs set.
func MaskOf(cpus ...uint) Mask {
	var m Mask
	for _, cpu := range cpus {
		if cpu >= MaskBits {
			panic(fmt.Sprintf("CPU #%d beyond mask width of %d bits", cpu, MaskBits))
		}
		m |= 1 << cpu
	}
	return m
}

// LowestSetBit returns the mask of the least-significant set bit, isolating
// the lowest-numbered CPU present in this mask. For example, 15 (00001111) &
// -15 (11110001) returns 1 (00000001). The result is zero for the empty
// mask, and otherwise always has exactly one bit set.
func (m Mask) LowestSetBit() Mask {
	return m & -m
}

// IsSet reports whether cpu is in this mask.
func (m Mask) IsSet(cpu uint) bool {
	return cpu < MaskBits && m&(1<<cpu) != 0
}

// Count returns the number of CPUs in this mask.
func (m Mask) Count() int {
	return bits.OnesCount(uint(m))
}

// LowestCPU returns the number of the lowest CPU in this mask. It returns
// false when the mask is empty.
func (m Mask) LowestCPU() (uint, bool) {
	if m == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros(uint(m))), true
}

// String returns the CPUs in this mask in the kernel's textual list format,
// with individual CPU ranges “x-y” separated by “,” and single CPU ranges
// collapsed into “x”.
func (m Mask) String() string {
	var b strings.Builder
	rest := uint(m)
	cpu := uint(0)
	for rest != 0 {
		gap := uint(bits.TrailingZeros(rest))
		cpu += gap
		rest >>= gap
		run := uint(bits.TrailingZeros(^rest))
		if b.Len() > 0 {
			b.WriteString(",")
		}
		if run == 1 {
			fmt.Fprintf(&b, "%d", cpu)
		} else {
			fmt.Fprintf(&b, "%d-%d", cpu, cpu+run-1)
		}
		cpu += run
		rest >>= run
	}
	return b.String()
}

// ParseMask parses the kernel's textual CPU list format, such as “0-7,9”,
// into a Mask. CPUs beyond the mask width are silently dropped, as the
// affinity OS calls could not address them anyway. If the text is malformed
// then an error is returned instead.
func ParseMask(b []byte) (Mask, error) {
	bs := faf.NewBytestring(b)
	var m Mask
	for {
		// nothing more, we're at the end of text/line, so we're successfully
		// done.
		if bs.EOL() {
			return m, nil
		}
		// we now expect a CPU number; either it stands alone, or it starts a
		// from-to range, or further ranges follow after a comma.
		from, ok := bs.Uint64()
		if !ok {
			return 0, errors.New("expected unsigned integer number")
		}
		to := from
		if !bs.EOL() {
			switch ch, _ := bs.Next(); ch {
			case '-':
				to, ok = bs.Uint64()
				if !ok {
					return 0, errors.New("expected unsigned integer number")
				}
				if to < from {
					return 0, fmt.Errorf("invalid range %d-%d", from, to)
				}
				if !bs.EOL() {
					if ch, _ = bs.Next(); ch != ',' {
						return 0, errors.New("expected ','")
					}
				}
			case ',':
				// a single CPU number, and more to follow; rinse and repeat.
			default:
				return 0, errors.New("expected '-' or ','")
			}
		}
		for cpu := from; cpu <= to && cpu < MaskBits; cpu++ {
			m |= 1 << cpu
		}
	}
}
