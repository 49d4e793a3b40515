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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("command builder", func() {

	It("accumulates arguments", func() {
		c := New("echo")
		Expect(c.Program()).To(Equal("echo"))
		Expect(c.Argv()).To(BeEmpty())
		Expect(c.Arg("echo").Arg("hello").Args("big", "world")).To(BeIdenticalTo(c))
		Expect(c.Argv()).To(Equal([]string{"echo", "hello", "big", "world"}))
	})

	It("starts with argv[0]", func() {
		c := NewArgv0("echo").Args("hello", "world")
		Expect(c.Program()).To(Equal("echo"))
		Expect(c.Argv()).To(Equal([]string{"echo", "hello", "world"}))
	})

	It("hands out copies", func() {
		c := NewArgv0("echo")
		argv := c.Argv()
		argv[0] = "foo"
		Expect(c.Argv()).To(Equal([]string{"echo"}))
	})

})
