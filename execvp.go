// Copyright 2020 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build unix
// +build unix

package execvp

/*
#include <stdlib.h>
#include <unistd.h>
*/
import "C"

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Execvp runs program with the argument vector args, completely replacing
// the currently running program. If it returns at all, it always returns an
// error: either a *BadArgumentError in case program or args contain NUL
// bytes, or an *ExecError with the errno reported by the OS.
//
// program is searched for in the directories listed in $PATH, unless it
// contains a slash. args is the new program's argv and thus normally starts
// with program; but it doesn't need to, as argv[0] is only what the new
// program will see as its name.
func Execvp(program string, args []string) error {
	// Check everything before allocating anything: we never want to hand
	// truncated strings to the C library.
	if err := checkNul(-1, program); err != nil {
		return err
	}
	for idx, arg := range args {
		if err := checkNul(idx, arg); err != nil {
			return err
		}
	}
	cprogram := C.CString(program)
	defer C.free(unsafe.Pointer(cprogram))
	argv := newArgv(args)
	defer argv.free()
	// With the two-value call form cgo picks up errno immediately after
	// execvp returns, on the same OS thread, before anything else could
	// clobber it.
	if _, err := C.execvp(cprogram, argv.ptr()); err != nil {
		if errno, ok := err.(unix.Errno); ok && errno != 0 {
			return &ExecError{Program: program, Errno: errno}
		}
	}
	panic("execvp returned unexpectedly")
}

// checkNul returns a *BadArgumentError if s contains a NUL byte, otherwise
// nil.
func checkNul(index int, s string) error {
	if pos := strings.IndexByte(s, 0); pos >= 0 {
		return &BadArgumentError{Index: index, Position: pos}
	}
	return nil
}
