package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/sketchpad/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	output string
}

func (c *configCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *configCmd) Program() string { return c.root.program + " config" }

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	c := &configCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.output, "output", "", "file written by \"config save\" (defaults to the active config path)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) == 0 {
		return &UsageError{of: c}
	}
	actions := map[string]func() error{
		"print": c.runPrint,
		"save":  c.runSave,
	}
	run, ok := actions[args[0]]
	if !ok {
		return fmt.Errorf("unknown config command: %s", args[0])
	}
	return run()
}

func (c *configCmd) runPrint() error {
	_, err := io.WriteString(c.root.stdout, c.root.config.String())
	return err
}

// target is the file "config save" writes: -output, then the active config,
// then the default location.
func (c *configCmd) target() (string, error) {
	if c.output != "" {
		return c.output, nil
	}
	if p := config.NewLoader(version, configPathOverride).GetConfigPath(); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

func (c *configCmd) runSave() error {
	path, err := c.target()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.root.config.String()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(c.root.stderr, "config written to %s\n", path)
	return nil
}
