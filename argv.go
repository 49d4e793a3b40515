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
*/
import "C"

import "unsafe"

// argv is a NULL-terminated array of NUL-terminated C strings. Both the
// array and the strings live on the C heap, so the Go garbage collector
// never moves them while the C library reads them.
type argv []*C.char

// newArgv returns the C representation of args. The caller must release it
// using free. args must not contain NUL bytes.
func newArgv(args []string) argv {
	n := len(args) + 1
	p := C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof((*C.char)(nil))))
	a := argv(unsafe.Slice((**C.char)(p), n))
	for idx, arg := range args {
		a[idx] = C.CString(arg)
	}
	a[n-1] = nil
	return a
}

// ptr returns the address of the first array element, as expected by the
// exec family.
func (a argv) ptr() **C.char {
	return &a[0]
}

// free releases the strings as well as the array itself.
func (a argv) free() {
	for _, s := range a[:len(a)-1] {
		C.free(unsafe.Pointer(s))
	}
	C.free(unsafe.Pointer(&a[0]))
}

// strings decodes the C representation back into Go strings, stopping at
// the NULL sentinel. The second result is false if there was no sentinel
// where one should have been.
func (a argv) strings() ([]string, bool) {
	args := make([]string, 0, len(a)-1)
	for _, s := range a[:len(a)-1] {
		if s == nil {
			return args, false
		}
		args = append(args, C.GoString(s))
	}
	return args, a[len(a)-1] == nil
}
