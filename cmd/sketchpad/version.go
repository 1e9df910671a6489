package main

import (
	"flag"
	"fmt"
	"strings"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Program() string { return v.r.program + " version" }

func (v *versionCmd) FlagSet() *flag.FlagSet { return nil }

func (v *versionCmd) Run() error {
	line := fmt.Sprintf("%s version %s", v.r.program, version)
	var extra []string
	if commit != "" {
		extra = append(extra, "commit "+commit)
	}
	if date != "" {
		extra = append(extra, "built "+date)
	}
	if len(extra) > 0 {
		line += " (" + strings.Join(extra, ", ") + ")"
	}
	fmt.Fprintln(v.r.stdout, line)
	return nil
}
