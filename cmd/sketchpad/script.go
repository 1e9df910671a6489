package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/sketch"
)

var errScriptSyntax = errors.New("syntax error")

type scriptCmd struct {
	*root
	fs     *flag.FlagSet
	file   string
	output string
}

func (s *scriptCmd) FlagSet() *flag.FlagSet { return s.fs }

func (s *scriptCmd) Program() string { return s.root.program + " script" }

func parseScriptCmd(args []string, r *root) (*scriptCmd, error) {
	fs := flag.NewFlagSet("script", flag.ContinueOnError)
	s := &scriptCmd{root: r, fs: fs}
	fs.Usage = usageFunc(s)
	fs.StringVar(&s.file, "file", "", "script to run (defaults to stdin)")
	fs.StringVar(&s.output, "output", "", "save the final canvas to this PNG file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: s}
	}
	return s, nil
}

func (s *scriptCmd) Run() error {
	in := s.root.stdin
	name := "stdin"
	if s.file != "" && s.file != "-" {
		f, err := os.Open(s.file)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
		name = s.file
	}

	session, err := s.root.newSession(s.root.stderr)
	if err != nil {
		return err
	}
	written, err := runScript(in, session)
	for _, p := range written {
		fmt.Fprintf(s.root.stdout, "saved %s\n", p)
	}
	if err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	if s.output != "" {
		p, err := session.Save(s.output)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.root.stdout, "saved %s\n", p)
	}
	return nil
}

// runScript applies one command per line to the session's canvas:
//
//	size W H    resize keeping content
//	draw X Y    foreground dab
//	erase X Y   background dab
//	clear       fill with the background
//	save PATH   export as PNG
//
// Blank lines and lines starting with # are skipped. It returns the files
// written so far even when a later line fails.
func runScript(r io.Reader, s *sketch.Session) ([]string, error) {
	var written []string
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		op := strings.ToLower(fields[0])
		args := fields[1:]
		var err error
		switch op {
		case "size":
			var w, h int
			if w, h, err = intPair(op, args); err == nil {
				err = s.Canvas().Resize(w, h)
			}
		case "draw", "erase":
			var x, y int
			if x, y, err = intPair(op, args); err == nil {
				b := sketch.ButtonDraw
				if op == "erase" {
					b = sketch.ButtonErase
				}
				s.Press(b, x, y)
				s.Release(b)
			}
		case "clear":
			if len(args) != 0 {
				err = fmt.Errorf("%w: clear takes no arguments", errScriptSyntax)
				break
			}
			s.New()
		case "save":
			if len(args) == 0 {
				err = fmt.Errorf("%w: save needs a path", errScriptSyntax)
				break
			}
			// paths may contain spaces
			path := strings.TrimSpace(line[len(fields[0]):])
			var p string
			if p, err = s.Save(path); err == nil {
				written = append(written, p)
			}
		default:
			err = fmt.Errorf("%w: unknown command %q", errScriptSyntax, fields[0])
		}
		if err != nil {
			return written, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return written, err
	}
	return written, nil
}

func intPair(op string, args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s needs two integers", errScriptSyntax, op)
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", errScriptSyntax, op, err)
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", errScriptSyntax, op, err)
	}
	return a, b, nil
}
