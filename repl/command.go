package repl

import (
	"regexp"
	"strings"
)

// Command identifies a menu option. The string form matched at the
// prompt is case-insensitive and may carry leading/trailing whitespace,
// exactly as braiding.cpp's prompt_option regexes allow.
type Command int

const (
	CmdLeftNormalForm Command = iota
	CmdRightNormalForm
	CmdLeftGCD
	CmdRightGCD
	CmdLeftLCM
	CmdRightLCM
	CmdSSS
	CmdUSS
	CmdSCS
	CmdCentralizer
	CmdConjugacy
	CmdThurstonType
	CmdHeader
	CmdGarside
	CmdQuit
)

var commandPatterns = []struct {
	cmd Command
	re  *regexp.Regexp
}{
	{CmdLeftGCD, regexp.MustCompile(`(?i)^\^l$`)},
	{CmdRightGCD, regexp.MustCompile(`(?i)^\^r$`)},
	{CmdLeftLCM, regexp.MustCompile(`(?i)^vl$`)},
	{CmdRightLCM, regexp.MustCompile(`(?i)^vr$`)},
	{CmdSSS, regexp.MustCompile(`(?i)^sss$`)},
	{CmdUSS, regexp.MustCompile(`(?i)^uss$`)},
	{CmdSCS, regexp.MustCompile(`(?i)^scs$`)},
	{CmdCentralizer, regexp.MustCompile(`(?i)^ctr$`)},
	{CmdGarside, regexp.MustCompile(`(?i)^gar$`)},
	{CmdLeftNormalForm, regexp.MustCompile(`(?i)^l$`)},
	{CmdRightNormalForm, regexp.MustCompile(`(?i)^r$`)},
	{CmdConjugacy, regexp.MustCompile(`(?i)^c$`)},
	{CmdThurstonType, regexp.MustCompile(`(?i)^t$`)},
	{CmdHeader, regexp.MustCompile(`(?i)^h$`)},
	{CmdQuit, regexp.MustCompile(`(?i)^q$`)},
}

// parseCommand matches line (already trimmed of surrounding whitespace)
// against the menu's command set. The second return is false for "?"
// (which the caller checks first with isHelp) and for anything
// unrecognised.
func parseCommand(line string) (Command, bool) {
	line = strings.TrimSpace(line)
	for _, p := range commandPatterns {
		if p.re.MatchString(line) {
			return p.cmd, true
		}
	}
	return 0, false
}

// isHelp reports whether line is the bare "?" help request.
func isHelp(line string) bool {
	return strings.TrimSpace(line) == "?"
}
