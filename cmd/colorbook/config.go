package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/colorbook/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	out    io.Writer
	loader *config.Loader
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{
		root:   r.subcommand("config"),
		fs:     fs,
		out:    os.Stdout,
		loader: config.NewLoader(version, configPathOverride),
	}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) != 1 {
		return &UsageError{of: c}
	}
	switch args[0] {
	case "print":
		fmt.Fprint(c.out, c.cfg().String())
		return nil
	case "save":
		path, err := c.loader.Save(c.cfg())
		if err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
		return nil
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}
