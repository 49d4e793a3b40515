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

package execvp

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrBadArgument matches all errors caused by passing a program name or
// argument containing a NUL byte, which cannot be passed to C.
var ErrBadArgument = errors.New("bad argument to exec")

// BadArgumentError reports a program name or argument containing a NUL
// byte. No process replacement was attempted.
type BadArgumentError struct {
	// Index of the offending argument in argv, or -1 for the program name.
	Index int
	// Position of the first NUL byte in the offending string.
	Position int
}

// Error returns a description of the bad argument.
func (e *BadArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: nul byte found in provided data at position: %d",
		ErrBadArgument.Error(), e.Position)
}

// Is reports ErrBadArgument as matching any BadArgumentError.
func (e *BadArgumentError) Is(target error) bool {
	return target == ErrBadArgument
}

// ExecError reports that the OS refused to replace the process image. It
// wraps the errno returned by execvp(3).
type ExecError struct {
	Program string     // program as passed to execvp.
	Errno   unix.Errno // error reported by the OS.
}

// Error returns a description of the failed process replacement.
func (e *ExecError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "couldn't exec process: " + e.Errno.Error()
}

// Unwrap returns the errno, so that errors.Is(err, unix.ENOENT) as well as
// errors.Is(err, fs.ErrNotExist) work.
func (e *ExecError) Unwrap() error {
	return e.Errno
}
