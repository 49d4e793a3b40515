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

// Command builds a program invocation to execute in place of the current
// process. Its API is deliberately similar to os/exec.Cmd, except that it
// never runs anything in a child process.
//
//   err := execvp.NewArgv0("echo").Arg("hello").Arg("world").Exec()
//
// A Command is not safe for concurrent use.
type Command struct {
	program string
	argv    []string
}

// New returns a Command for running the named program. The program will be
// searched for using the usual rules for $PATH. The argument vector starts
// out empty, so the first argument added becomes argv[0].
func New(program string) *Command {
	return &Command{program: program}
}

// NewArgv0 returns a Command for running the named program, with program
// already set as argv[0].
func NewArgv0(program string) *Command {
	return &Command{program: program, argv: []string{program}}
}

// Arg appends a single argument. It can be chained.
func (c *Command) Arg(arg string) *Command {
	c.argv = append(c.argv, arg)
	return c
}

// Args appends multiple arguments. It can be chained.
func (c *Command) Args(args ...string) *Command {
	c.argv = append(c.argv, args...)
	return c
}

// Program returns the name of the program to execute.
func (c *Command) Program() string {
	return c.program
}

// Argv returns a copy of the argument vector accumulated so far.
func (c *Command) Argv() []string {
	return append([]string{}, c.argv...)
}

// Exec executes the command built. If it succeeds, it never returns; see
// Execvp for the errors returned when it doesn't.
func (c *Command) Exec() error {
	return Execvp(c.program, c.argv)
}
