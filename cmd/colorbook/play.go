package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/colorbook/internal/session"
	"github.com/example/colorbook/internal/ui"
)

// playCmd opens a page in the coloring window.
type playCmd struct {
	pageFlags
	color  string
	output string
	*root
	fs *flag.FlagSet
}

func (p *playCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePlayCmd(args []string, r *root) (*playCmd, error) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	p := &playCmd{root: r.subcommand("play"), fs: fs}
	fs.Usage = usageFunc(p)
	p.pageFlags.register(fs)
	fs.StringVar(&p.color, "color", "", "initial fill color: swatch name, color name or #RRGGBB")
	fs.StringVar(&p.output, "output", "", "file written by ctrl+s (default NAME-colored.png in save_dir)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// prepare loads and binds the page.
func (p *playCmd) prepare() (*session.Session, error) {
	outline, regions, err := p.load()
	if err != nil {
		return nil, err
	}
	var opts []session.Option
	if p.color != "" {
		c, err := p.parseColor(p.color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, session.WithColor(c))
	}
	sess := p.newSession(opts...)
	if err := sess.Bind(outline, regions); err != nil {
		return nil, fmt.Errorf("play %s: %w", p.name(), err)
	}
	return sess, nil
}

func (p *playCmd) Run() error {
	sess, err := p.prepare()
	if err != nil {
		return err
	}
	output := p.output
	if output == "" {
		output = p.defaultOutput(p.name())
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	w := ui.New(
		ui.WithSession(sess),
		ui.WithPalette(p.cfg().Palette),
		ui.WithTheme(p.currentTheme()),
		ui.WithOutput(output),
		ui.WithTitle("Colorbook - "+p.name()),
		ui.WithNotifier(p.notifier),
		ui.WithVerbose(p.verbose),
	)
	w.Run()
	return nil
}
