package repl

import "errors"

// ErrInterruptAskedFor is a control-flow signal: it unwinds the current
// command case back to the menu prompt without ending the session. It is
// raised when the input stream is closed mid-prompt (the terminal
// equivalent of the original's Ctrl-D/Ctrl-C handling).
var ErrInterruptAskedFor = errors.New("repl: interrupted")

// ErrHelpAskedFor names the "?" help request. No function in this
// package returns it: promptCommand recognises "?" itself (via isHelp)
// and reprints the menu rather than treating it as an unrecognised
// command.
var ErrHelpAskedFor = errors.New("repl: help asked for")

// ErrThurstonUnsupported is returned by Session.ThurstonType when the
// bound factor kind has no Thurston classification defined (anything
// other than the classical braid structure).
var ErrThurstonUnsupported = errors.New("repl: Thurston classification is only defined for the classical braid structure")
