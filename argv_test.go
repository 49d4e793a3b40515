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

var _ = Describe("argv", func() {

	DescribeTable("encodes into a NULL-terminated C array",
		func(args []string) {
			a := newArgv(args)
			defer a.free()
			Expect(a).To(HaveLen(len(args) + 1))
			Expect(a.ptr()).To(BeIdenticalTo(&a[0]))
			decoded, terminated := a.strings()
			Expect(terminated).To(BeTrue())
			Expect(decoded).To(HaveLen(len(args)))
			for idx := range args {
				Expect(decoded[idx]).To(Equal(args[idx]))
			}
		},
		Entry("no args", []string(nil)),
		Entry("program only", []string{"echo"}),
		Entry("with empty args", []string{"echo", "", "foo", ""}),
		Entry("with non-ASCII args", []string{"echo", "hellö", "wörld ✓"}),
	)

	It("finds the first NUL", func() {
		Expect(checkNul(0, "foo")).To(Succeed())
		Expect(checkNul(0, "")).To(Succeed())
		Expect(checkNul(3, "fo\x00o\x00")).To(Equal(
			&BadArgumentError{Index: 3, Position: 2}))
	})

})
