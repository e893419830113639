package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/example/colorbook/internal/theme"
)

type paletteCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func parsePaletteCmd(args []string, r *root) (*paletteCmd, error) {
	fs := flag.NewFlagSet("palette", flag.ExitOnError)
	cmd := &paletteCmd{root: r.subcommand("palette"), fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *paletteCmd) Run() error {
	palette := c.cfg().Palette
	if len(palette) == 0 {
		fmt.Fprintln(c.out, "no swatches configured")
		return nil
	}
	blocks := false
	if f, ok := c.out.(*os.File); ok {
		blocks = term.IsTerminal(int(f.Fd()))
	}
	fmt.Fprintln(c.out, "palette swatches (* marks the starting color):")
	for idx, entry := range palette {
		marker := " "
		if idx == 0 {
			marker = "*"
		}
		line := fmt.Sprintf("%s %d: %-12s %s", marker, idx+1, entry.Name, theme.Hex(entry.Color))
		if blocks {
			line += fmt.Sprintf(" \x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		}
		fmt.Fprintln(c.out, line)
	}
	return nil
}

func (c *paletteCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
