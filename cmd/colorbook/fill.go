package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"github.com/example/colorbook/internal/session"
)

const pipeName = "-"

// fillCmd applies taps in image coordinates without opening a window.
type fillCmd struct {
	pageFlags
	color  string
	output string
	points []image.Point
	stdout io.Writer
	stderr io.Writer
	*root
	fs *flag.FlagSet
}

func (f *fillCmd) FlagSet() *flag.FlagSet {
	return f.fs
}

func parseFillCmd(args []string, r *root) (*fillCmd, error) {
	fs := flag.NewFlagSet("fill", flag.ExitOnError)
	f := &fillCmd{root: r.subcommand("fill"), fs: fs, stdout: os.Stdout, stderr: os.Stderr}
	fs.Usage = usageFunc(f)
	f.pageFlags.register(fs)
	fs.StringVar(&f.color, "color", "", "fill color: swatch name, color name or #RRGGBB")
	fs.StringVar(&f.output, "output", "", "output file, or - for stdout (default NAME-colored.png in save_dir)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	if fs.NArg() == 0 {
		return nil, &UsageError{of: f}
	}
	for _, arg := range fs.Args() {
		p, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		f.points = append(f.points, p)
	}
	return f, nil
}

// parsePoint reads "X,Y".
func parsePoint(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid point %q: expected X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}

func (f *fillCmd) Run() error {
	output := f.output
	if output == "" {
		output = f.defaultOutput(f.name())
	}
	if output == pipeName {
		if file, ok := f.stdout.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
	}

	outline, regions, err := f.load()
	if err != nil {
		return err
	}
	var opts []session.Option
	if f.color != "" {
		c, err := f.parseColor(f.color)
		if err != nil {
			return err
		}
		opts = append(opts, session.WithColor(c))
	}
	sess := f.newSession(opts...)
	if err := sess.Bind(outline, regions); err != nil {
		return fmt.Errorf("fill %s: %w", f.name(), err)
	}

	filled := 0
	for _, pt := range f.points {
		job, err := sess.PrepareAt(pt)
		var p *session.Pending
		if err == nil {
			p, err = job.Run()
		}
		if err != nil {
			if session.IsMiss(err) {
				fmt.Fprintf(f.stderr, "%d,%d: missed: %v\n", pt.X, pt.Y, err)
				continue
			}
			return fmt.Errorf("fill %d,%d: %w", pt.X, pt.Y, err)
		}
		sess.Commit(p)
		filled++
		fmt.Fprintf(f.stderr, "%d,%d: filled %d pixels in %v\n", pt.X, pt.Y, p.Area, p.Bounds)
	}

	snap := sess.Snapshot()
	if output == pipeName {
		if err := png.Encode(f.stdout, snap); err != nil {
			return fmt.Errorf("write PNG to stdout: %w", err)
		}
		fmt.Fprintln(f.stderr, "wrote PNG data to stdout")
		return nil
	}
	if err := imaging.Save(snap, output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}
	fmt.Fprintf(f.stderr, "filled %d of %d regions, saved %s\n", filled, len(f.points), output)
	f.notifySave(output)
	return nil
}
