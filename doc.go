// Package execvp replaces the currently running process image with a new
// program, using the C library's execvp(3). This is the exec-without-fork
// that os/exec doesn't offer and syscall.Exec only offers without searching
// the PATH.
//
// Code Usage
//
// Pass the program and its complete argument vector, including argv[0]:
//
//   err := execvp.Execvp("echo", []string{"echo", "hello", "world"})
//   fmt.Fprintf(os.Stderr, "error: %s\n", err)
//   os.Exit(1)
//
// Or accumulate the arguments first:
//
//   err := execvp.New("echo").
//       Arg("echo").
//       Args("hello", "world").
//       Exec()
//
// Return Means Failure
//
// Execvp and Command.Exec only ever return when the process replacement
// failed, so their error result is never nil. On success the calling
// process keeps its PID and open file descriptors (unless marked
// close-on-exec), but its text, data, and stack are replaced by the new
// program, and all other threads are gone.
//
// Errors
//
// Strings containing NUL bytes cannot be passed to C; they are rejected
// with a *BadArgumentError before anything is handed to the OS. Otherwise,
// the error is an *ExecError carrying the errno reported by execvp(3),
// which can be matched directly:
//
//   if errors.Is(err, unix.ENOENT) { ... }
//   if errors.Is(err, fs.ErrPermission) { ... }
//
// Notes
//
// The program name and argv[0] are independent of each other: the former
// is what gets searched for and loaded, the latter is what the new program
// sees as its own name. Usually, they are identical.
//
// The execvp package requires cgo (https://golang.org/cmd/cgo/).
//
package execvp
