/*

Package reexec allows to fork and then re-execute the current application
(process) in order to only invoke a specific action function, and then to
observe how this child process terminated.

Why, because code replacing its own process image can only be watched from
the outside: when it succeeds, there's nobody left to report back. So we
let a re-executed child do the replacing, and look at its exit code and
output instead.

*/
package reexec
