package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-garcide/garcide/factor"
)

const ruleLine = "────────────────────────────────────────────────────────────────"

const menuText = `l:      Left Normal Form        r:      Right Normal Form
^l:     Left GCD                ^r:     Right GCD
vl:     Left LCM                vr:     Right LCM
sss:    Super Summit Set        uss:    Ultra Summit Set
scs:    Sliding Circuits Set    ctr:    Centralizer
c:      Conjugacy Test          t:      Thurston Type
h:      Print header            gar:    Garside structure
q:      Quit
`

// REPL drives a Session over an input/output stream pair.
type REPL struct {
	session Session
	in      *bufio.Scanner
	out     io.Writer
}

// New builds a REPL that reads commands and braid expressions from in
// and writes prompts and results to out.
func New(session Session, in io.Reader, out io.Writer) *REPL {
	return &REPL{session: session, in: bufio.NewScanner(in), out: out}
}

// Run prints the header and menu, then dispatches commands until the
// user quits or the input stream is exhausted.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.session.Header())
	r.printMenu()
	for {
		cmd, err := r.promptCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		fmt.Fprintln(r.out)

		if cmd == CmdQuit {
			fmt.Fprintln(r.out, "Leaving Braiding.")
			return nil
		}

		if err := r.dispatch(cmd); err != nil {
			if errors.Is(err, ErrInterruptAskedFor) {
				fmt.Fprintln(r.out)
				continue
			}
			return err
		}
	}
}

func (r *REPL) printMenu() {
	fmt.Fprintln(r.out, r.session.GarsideStructure())
	fmt.Fprintln(r.out, menuText)
}

// readLine reads one line, returning io.EOF if the stream is closed
// before a line arrives; promptElement turns that into
// ErrInterruptAskedFor, while Run's own top-level prompt treats a clean
// EOF as a normal quit.
func (r *REPL) readLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.in.Text(), nil
}

// promptCommand loops on "?" (reprinting the menu) and unrecognised
// input (reprinting an error) until a real command line arrives.
func (r *REPL) promptCommand() (Command, error) {
	for {
		line, err := r.readLine(ruleLine + "\n\nChoose an option (? for help, gar for a description of the\nGarside structure):\n>>> ")
		if err != nil {
			return 0, err
		}
		if isHelp(line) {
			fmt.Fprintln(r.out)
			r.printMenu()
			continue
		}
		cmd, ok := parseCommand(line)
		if !ok {
			fmt.Fprintln(r.out, "\nNot a valid option!")
			continue
		}
		return cmd, nil
	}
}

// promptElement reads lines until the session accepts one as a valid
// braid expression, retrying on factor.ErrInvalidString and unwinding
// with ErrInterruptAskedFor on EOF.
func (r *REPL) promptElement(label string, parse func(string) error) error {
	for {
		line, err := r.readLine(label)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrInterruptAskedFor
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := parse(line); err != nil {
			if errors.Is(err, factor.ErrInvalidString) {
				fmt.Fprintln(r.out, err)
				continue
			}
			return err
		}
		return nil
	}
}

func (r *REPL) dispatch(cmd Command) error {
	switch cmd {
	case CmdLeftNormalForm:
		return r.unary("Enter a braid:\n>>> ", r.session.LeftNormalForm, "Its left normal form is:")
	case CmdRightNormalForm:
		return r.unary("Enter a braid:\n>>> ", r.session.RightNormalForm, "Its right normal form is:")
	case CmdLeftGCD:
		return r.binary(r.session.LeftGCD, "Their left gcd is:")
	case CmdRightGCD:
		return r.binary(r.session.RightGCD, "Their right gcd is:")
	case CmdLeftLCM:
		return r.binary(r.session.LeftLCM, "Their left lcm is:")
	case CmdRightLCM:
		return r.binary(r.session.RightLCM, "Their right lcm is:")
	case CmdSSS:
		return r.set("Enter a braid:\n>>> ", r.session.SSS, "Its super summit set is:")
	case CmdUSS:
		return r.set("Enter a braid:\n>>> ", r.session.USS, "Its ultra summit set is:")
	case CmdSCS:
		return r.set("Enter a braid:\n>>> ", r.session.SCS, "Its sliding circuits set is:")
	case CmdCentralizer:
		return r.set("Enter a braid:\n>>> ", r.session.Centralizer, "A generating set of its centralizer is:")
	case CmdConjugacy:
		return r.conjugacyCase()
	case CmdThurstonType:
		return r.unary("Enter a braid:\n>>> ", r.session.ThurstonType, "Its Thurston type is:")
	case CmdHeader:
		fmt.Fprintln(r.out, r.session.Header())
		return nil
	case CmdGarside:
		fmt.Fprintln(r.out, r.session.GarsideStructure())
		return nil
	}
	return fmt.Errorf("repl: unhandled command %d", cmd)
}

func (r *REPL) unary(label string, f func(string) (string, error), header string) error {
	var result string
	err := r.promptElement(label, func(line string) error {
		out, err := f(line)
		if err != nil {
			return err
		}
		result = out
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, header)
	fmt.Fprintln(r.out, result)
	return nil
}

func (r *REPL) set(label string, f func(string) ([]string, error), header string) error {
	var result []string
	err := r.promptElement(label, func(line string) error {
		out, err := f(line)
		if err != nil {
			return err
		}
		result = out
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, header)
	for _, el := range result {
		fmt.Fprintln(r.out, el)
	}
	fmt.Fprintf(r.out, "(%d elements)\n", len(result))
	return nil
}

func (r *REPL) binary(f func(a, b string) (string, error), header string) error {
	var a string
	if err := r.promptElement("Enter the first braid:\n>>> ", func(line string) error {
		a = line
		return nil
	}); err != nil {
		return err
	}
	var result string
	if err := r.promptElement("Enter the second braid:\n>>> ", func(line string) error {
		out, err := f(a, line)
		if err != nil {
			return err
		}
		result = out
		return nil
	}); err != nil {
		return err
	}
	fmt.Fprintln(r.out, header)
	fmt.Fprintln(r.out, result)
	return nil
}

func (r *REPL) conjugacyCase() error {
	var a string
	if err := r.promptElement("Enter the first braid:\n>>> ", func(line string) error {
		a = line
		return nil
	}); err != nil {
		return err
	}
	var conjugate bool
	var witness string
	if err := r.promptElement("Enter the second braid:\n>>> ", func(line string) error {
		ok, w, err := r.session.ConjugacyTest(a, line)
		if err != nil {
			return err
		}
		conjugate, witness = ok, w
		return nil
	}); err != nil {
		return err
	}
	if !conjugate {
		fmt.Fprintln(r.out, "They are not conjugate.")
		return nil
	}
	fmt.Fprintln(r.out, "They are conjugate; a conjugating element is:")
	fmt.Fprintln(r.out, witness)
	return nil
}
