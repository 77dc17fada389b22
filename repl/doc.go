// Package repl implements the line-oriented menu loop that drives a
// Garside group session interactively: prompting for a command, reading
// whatever braid expressions that command needs, and printing the
// result. The command surface and the try/catch-around-each-case shape
// are ported from braiding_main.cpp and braiding.cpp's prompt_option
// dispatch; ErrInterruptAskedFor stands in for the C++ original's
// InterruptAskedFor exception, used to abandon a case mid-prompt and
// return to the menu rather than to unwind the whole process.
package repl
