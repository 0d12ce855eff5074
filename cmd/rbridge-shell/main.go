// rbridge-shell is an interactive inspector for the conversion rules.
//
// It builds synthetic runtime values, runs them through the active
// converter and prints the wrapper they promote to. Useful for checking
// how a tag/class/dim combination will convert before wiring it into an
// embedding.
//
// Usage:
//
//	rbridge-shell            # interactive when stdin is a terminal
//	rbridge-shell < script   # one command per line otherwise
//
// Commands:
//
//	logical|int|real|str|complex V...   start a new vector value
//	raw HEX                             start a raw byte value
//	s4 CLASS...                         start a formal-class instance
//	closure | env | extptr | null       start one of the singleton kinds
//	dim N...                            set the dim attribute
//	class NAME...                       set the class chain
//	show                                print the current value
//	convert                             convert to host and print the result
//	foreign LITERAL                     convert a host literal to a value
//	quit
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rbridge-dev/rbridge"
	"golang.org/x/term"
)

func main() {
	rbridge.SetConverter(rbridge.NewDefaultConverter())

	if term.IsTerminal(int(os.Stdin.Fd())) {
		runInteractive(os.Stdin, os.Stdout)
		return
	}
	runScript(os.Stdin, os.Stdout)
}

func runInteractive(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "rbridge conversion shell (type \"quit\" to exit)")
	scanner := bufio.NewScanner(in)
	sh := &shell{out: out}
	for {
		fmt.Fprint(out, "% ")
		if !scanner.Scan() {
			break
		}
		if !sh.dispatch(scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
	}
}

func runScript(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	sh := &shell{out: out}
	for scanner.Scan() {
		if !sh.dispatch(scanner.Text()) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}
}

// shell tracks the value under construction between commands.
type shell struct {
	out io.Writer
	cur *rbridge.Value
}

// dispatch runs one command line. It returns false when the shell should
// exit.
func (sh *shell) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return true
	}
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return false
	case "logical", "int", "real", "str", "complex":
		err = sh.startVector(cmd, args)
	case "raw":
		err = sh.startRaw(args)
	case "s4":
		sh.cur = rbridge.NewS4(args...)
	case "closure":
		sh.cur = rbridge.NewClosure("anonymous")
	case "env":
		sh.cur = rbridge.NewEnvironment()
	case "extptr":
		sh.cur = rbridge.NewExternalPtr()
	case "null":
		sh.cur = rbridge.Null()
	case "dim":
		err = sh.setDim(args)
	case "class":
		err = sh.setClass(args)
	case "show":
		err = sh.show()
	case "convert":
		err = sh.convert()
	case "foreign":
		err = sh.foreign(args)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return true
}

func (sh *shell) startVector(kind string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: need at least one element", kind)
	}
	switch kind {
	case "logical":
		xs := make([]bool, len(args))
		for i, a := range args {
			v, err := strconv.ParseBool(a)
			if err != nil {
				return fmt.Errorf("element %d: %v", i, err)
			}
			xs[i] = v
		}
		sh.cur = rbridge.NewLogicals(xs...)
	case "int":
		xs := make([]int64, len(args))
		for i, a := range args {
			v, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return fmt.Errorf("element %d: %v", i, err)
			}
			xs[i] = v
		}
		sh.cur = rbridge.NewInts(xs...)
	case "real":
		xs := make([]float64, len(args))
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("element %d: %v", i, err)
			}
			xs[i] = v
		}
		sh.cur = rbridge.NewReals(xs...)
	case "str":
		sh.cur = rbridge.NewStrings(args...)
	case "complex":
		xs := make([]complex128, len(args))
		for i, a := range args {
			v, err := strconv.ParseComplex(a, 128)
			if err != nil {
				return fmt.Errorf("element %d: %v", i, err)
			}
			xs[i] = v
		}
		sh.cur = rbridge.NewComplexes(xs...)
	}
	return nil
}

func (sh *shell) startRaw(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("raw: need one hex string")
	}
	b, err := hex.DecodeString(args[0])
	if err != nil {
		return err
	}
	sh.cur = rbridge.NewRawBytes(b)
	return nil
}

func (sh *shell) setDim(args []string) error {
	if sh.cur == nil {
		return fmt.Errorf("no current value")
	}
	dims := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil || v <= 0 {
			return fmt.Errorf("dim entry %d: must be a positive integer", i)
		}
		dims[i] = v
	}
	sh.cur = sh.cur.WithDim(dims...)
	return nil
}

func (sh *shell) setClass(args []string) error {
	if sh.cur == nil {
		return fmt.Errorf("no current value")
	}
	sh.cur = sh.cur.WithClass(args...)
	return nil
}

func (sh *shell) show() error {
	if sh.cur == nil {
		return fmt.Errorf("no current value")
	}
	fmt.Fprintf(sh.out, "tag=%s class=%v", sh.cur.Tag(), sh.cur.Class())
	if d, err := sh.cur.Dim(); err == nil {
		fmt.Fprintf(sh.out, " dim=%v", d)
	}
	fmt.Fprintln(sh.out)
	return nil
}

func (sh *shell) convert() error {
	if sh.cur == nil {
		return fmt.Errorf("no current value")
	}
	v, err := rbridge.ToHost(sh.cur)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "%T\n", v)
	return nil
}

// foreign parses one host literal (bool, int, float, complex or quoted
// string) and converts it outbound.
func (sh *shell) foreign(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("foreign: need one literal")
	}
	lit := args[0]
	var host any
	switch {
	case lit == "true" || lit == "false":
		host = lit == "true"
	case strings.HasPrefix(lit, `"`):
		host = strings.Trim(lit, `"`)
	default:
		if v, err := strconv.ParseInt(lit, 10, 64); err == nil {
			host = v
		} else if v, err := strconv.ParseFloat(lit, 64); err == nil {
			host = v
		} else if v, err := strconv.ParseComplex(lit, 128); err == nil {
			host = v
		} else {
			host = lit
		}
	}
	s, err := rbridge.ToForeign(host)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "tag=%s\n", s.Tag())
	return nil
}
