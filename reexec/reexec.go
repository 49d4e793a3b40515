// Reexec support; because a test that replaces its own process image
// would take the whole test run down with it.

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

package reexec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// magicEnvVar defines the name of the environment variable which triggers a
// specific registered action to be run when an application using the reexec
// package forks and restarts itself.
const magicEnvVar = "execvp_reexec_action"

// Timeout is the time a re-executed child gets to terminate before it is
// killed the hard way.
var Timeout = 10 * time.Second

// reexecEnabled enables fork/restarts only for applications which are
// reexec-aware by calling CheckAction() as early as possible in their
// main()s (or TestMain()s). Applications trying to re-execute without
// having called CheckAction() will panic instead of forking and
// re-executing themselves.
var reexecEnabled = false

// CheckAction checks if an application using reexec has been forked and
// re-executed in order to run a registered action. If we're in a
// re-execution, then this function won't return, but instead run the
// scheduled action and then exit. If the action replaces the process image,
// then the exit status is that of the new program.
func CheckAction() {
	if RunAction() {
		osExit(0)
	}
}

// For the sake of code coverage ;)
var osExit = os.Exit

// RunAction checks if an application using the reexec package has been
// forked and re-executed as a copy of itself. If this is the case, then the
// action specified for re-execution is run, and true returned. If this isn't
// the case, because this is the parent process and not a re-executed child,
// then no action is run, and false returned instead.
func RunAction() (action bool) {
	if actionname := os.Getenv(magicEnvVar); actionname != "" {
		action, ok := actions[actionname]
		if !ok {
			panic(fmt.Sprintf(
				"unregistered reexec re-execution action %q", actionname))
		}
		// Whatever the action replaces us with must not see the trigger,
		// or else re-executing ourselves again would loop.
		_ = os.Unsetenv(magicEnvVar)
		action()
		return true
	}
	// Enable fork/re-execution only for the parent process of the application
	// using reexec, but not in the re-executed child.
	reexecEnabled = true
	return
}

// Outcome describes how a re-executed child process terminated.
type Outcome struct {
	// ExitCode of the child, or -1 if it was terminated by a signal.
	ExitCode int
	// Stdout output of the child.
	Stdout []byte
	// Stderr output of the child.
	Stderr string
}

// ForkReexec restarts the application using reexec as a new child process
// and then immediately executes only the specified action (actionname),
// passing additional environment variables to the child. If result is
// non-nil and the child wrote something to stdout, this output gets
// deserialized as JSON into the passed result element. The call returns
// after the child process has terminated.
//
// In contrast to most process-starting functions, a non-zero exit code is
// not an error, but reported as part of the Outcome.
func ForkReexec(actionname string, envvars []string, result interface{}) (*Outcome, error) {
	// Safeguard against applications that forget to enable re-execution of
	// themselves by calling CheckAction() very early in their lives.
	if !reexecEnabled {
		if actionname := os.Getenv(magicEnvVar); actionname == "" {
			panic("reexec: ForkReexec: application does not support " +
				"forking and restarting, needs to call reexec.CheckAction() " +
				"first")
		}
		panic("reexec: ForkReexec: tried to re-execute in " +
			"already re-executing child process")
	}
	if _, ok := actions[actionname]; !ok {
		panic("reexec: ForkReexec: attempting to re-execute into " +
			"unregistered action \"" + actionname + "\"")
	}
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("reexec: ForkReexec: cannot locate myself, %w", err)
	}
	forkchild := exec.Command(self)
	forkchild.Env = append(os.Environ(), envvars...)
	forkchild.Env = append(forkchild.Env, magicEnvVar+"="+actionname)
	var childout, childerr bytes.Buffer
	forkchild.Stdout = &childout
	forkchild.Stderr = &childerr
	if err := forkchild.Start(); err != nil {
		return nil, fmt.Errorf("reexec: ForkReexec: cannot restart a fork of myself, %w", err)
	}
	// Either wait for the child to terminate on its own, or kill it the
	// hard way if it can't terminate in time.
	done := make(chan error, 1)
	go func() {
		done <- forkchild.Wait()
	}()
	select {
	case err = <-done:
	case <-time.After(Timeout):
		_ = forkchild.Process.Kill()
		<-done
		return nil, fmt.Errorf(
			"reexec: ForkReexec: child %q failed to terminate within %s",
			actionname, Timeout)
	}
	outcome := &Outcome{
		Stdout: childout.Bytes(),
		Stderr: childerr.String(),
	}
	var exiterr *exec.ExitError
	if errors.As(err, &exiterr) {
		outcome.ExitCode = exiterr.ExitCode()
	} else if err != nil {
		return nil, fmt.Errorf("reexec: ForkReexec: waiting for child failed, %w", err)
	}
	if result != nil && len(bytes.TrimSpace(outcome.Stdout)) > 0 {
		if err := json.Unmarshal(outcome.Stdout, result); err != nil {
			return outcome, fmt.Errorf(
				"reexec: ForkReexec: cannot decode child result, %w", err)
		}
	}
	return outcome, nil
}

// Action is a function that is run on demand during re-execution of a forked
// child.
type Action func()

// actions maps re-execution topics (names) to action functions to execute on
// a scheduled re-execution.
var actions = map[string]Action{}

// Register registers an Action function with a name so it can be triggered
// during ForkReexec(name, ...). The registration panics if the same Action
// name is registered more than once, regardless of whether with the same
// Action or different ones. Register actions from init() functions, so that
// they are already known when the re-executed child calls CheckAction().
func Register(name string, action Action) {
	if _, ok := actions[name]; ok {
		panic(fmt.Sprintf(
			"reexec: Register: re-execution action %q already registered",
			name))
	}
	actions[name] = action
}
