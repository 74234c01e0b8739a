/*
Package singlecore confines a host process to a single logical CPU during
startup, unless the user has already fixed the CPU count explicitly on the
host's command line.

The package splits into a pure decision core and a thin OS boundary. [Decide]
answers, for a given system affinity [Mask] and override state, whether the
process should be pinned at all. [Selector] drives the two OS calls: query
the process and system affinity masks, then pin the process to the
lowest-numbered CPU present in the system mask. [Shim] binds both to a host's
plugin lifecycle: its [Shim.OnStart] hook runs the configuration exactly once
per process, honours the host's CPUCount override switch, and never fails the
host's startup. An affinity error is logged and absorbed, leaving the process
running with its prior affinity.

The lowest available CPU is isolated from the system mask with the
two's-complement identity mask & -mask rather than by hard-coding CPU #0,
which would misfire on machines where the first logical processor is offline
or excluded.
*/
package singlecore
