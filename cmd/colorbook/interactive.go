package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/example/colorbook/assets"
	"github.com/example/colorbook/internal/clipboard"
	"github.com/example/colorbook/internal/session"
	"github.com/example/colorbook/internal/theme"
	"github.com/example/colorbook/internal/view"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

// interactiveCmd drives one session from text commands.
type interactiveCmd struct {
	*root
	fs     *flag.FlagSet
	execs  commandList
	width  int
	height int
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	sess   *session.Session
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func newInteractiveCmd(r *root) *interactiveCmd {
	return &interactiveCmd{
		root:   r.subcommand("interactive"),
		width:  800,
		height: 600,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	i := newInteractiveCmd(r)
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	i.fs = fs
	fs.Usage = usageFunc(i)
	fs.Var(&i.execs, "e", "execute a command and exit (may be specified multiple times)")
	fs.IntVar(&i.width, "width", i.width, "initial view width")
	fs.IntVar(&i.height, "height", i.height, "initial view height")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: i}
	}
	return i, nil
}

func (i *interactiveCmd) active() *session.Session {
	if i.sess == nil {
		i.sess = i.newSession(session.WithSurface(i.width, i.height))
	}
	return i.sess
}

func (i *interactiveCmd) Run() error {
	if len(i.execs) > 0 {
		for _, line := range i.execs {
			done, err := i.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	fmt.Fprintln(i.out, "Enter commands (type 'help' for a list, 'quit' to leave)")
	scanner := bufio.NewScanner(i.in)
	for {
		fmt.Fprint(i.out, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := i.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(i.errOut, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

var errNeedArgs = errors.New("wrong number of arguments")

// executeLine runs one command. It reports done when the session should end.
func (i *interactiveCmd) executeLine(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	sess := i.active()
	cmd, rest := strings.ToLower(args[0]), args[1:]
	need := func(n ...int) error {
		for _, want := range n {
			if len(rest) == want {
				return nil
			}
		}
		return fmt.Errorf("%s: %w", cmd, errNeedArgs)
	}

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(i.out, (&UsageError{of: i}).Error())
	case "bind":
		if err := need(2); err != nil {
			return false, err
		}
		outline, err := openRaster(rest[0])
		if err != nil {
			return false, err
		}
		regions, err := openRaster(rest[1])
		if err != nil {
			return false, err
		}
		if err := sess.Bind(outline, regions); err != nil {
			return false, fmt.Errorf("bind: %w", err)
		}
		fmt.Fprintf(i.out, "bound %v\n", sess.Size())
	case "page":
		if err := need(1); err != nil {
			return false, err
		}
		outline, regions, err := loadPage(rest[0])
		if err != nil {
			return false, err
		}
		if err := sess.Bind(outline, regions); err != nil {
			return false, fmt.Errorf("page: %w", err)
		}
		fmt.Fprintf(i.out, "bound %s %v\n", rest[0], sess.Size())
	case "pages":
		for _, name := range assets.Pages() {
			fmt.Fprintln(i.out, name)
		}
	case "color":
		if err := need(1); err != nil {
			return false, err
		}
		c, err := i.parseColor(rest[0])
		if err != nil {
			return false, fmt.Errorf("color: %w", err)
		}
		sess.SetSelectedColor(c)
	case "tap":
		if err := need(2); err != nil {
			return false, err
		}
		v, err := floats(rest)
		if err != nil {
			return false, fmt.Errorf("tap: %w", err)
		}
		p, err := sess.Handle(view.Tap{X: v[0], Y: v[1]})
		switch {
		case err == nil:
			fmt.Fprintf(i.out, "filled %d pixels at %v in %v\n", p.Area, p.Seed, p.Bounds)
		case session.IsMiss(err):
			fmt.Fprintf(i.out, "missed: %v\n", err)
		default:
			return false, fmt.Errorf("tap: %w", err)
		}
	case "pan":
		if err := need(2); err != nil {
			return false, err
		}
		v, err := floats(rest)
		if err != nil {
			return false, fmt.Errorf("pan: %w", err)
		}
		_, err = sess.Handle(view.Pan{DX: v[0], DY: v[1]})
		return false, err
	case "zoom":
		if err := need(1, 3); err != nil {
			return false, err
		}
		v, err := floats(rest)
		if err != nil {
			return false, fmt.Errorf("zoom: %w", err)
		}
		s := sess.Surface()
		g := view.Scale{Factor: v[0], FocusX: float64(s.X) / 2, FocusY: float64(s.Y) / 2}
		if len(v) == 3 {
			g.FocusX, g.FocusY = v[1], v[2]
		}
		_, err = sess.Handle(g)
		return false, err
	case "resize":
		if err := need(2); err != nil {
			return false, err
		}
		w, err := strconv.Atoi(rest[0])
		if err != nil {
			return false, fmt.Errorf("resize: %w", err)
		}
		h, err := strconv.Atoi(rest[1])
		if err != nil {
			return false, fmt.Errorf("resize: %w", err)
		}
		if w <= 0 || h <= 0 {
			return false, fmt.Errorf("resize: size must be positive")
		}
		sess.Resize(w, h)
	case "fit":
		sess.Refit()
	case "save":
		if err := need(1); err != nil {
			return false, err
		}
		snap := sess.Snapshot()
		if snap == nil {
			return false, fmt.Errorf("save: %w", session.ErrUnbound)
		}
		if err := imaging.Save(snap, rest[0]); err != nil {
			return false, fmt.Errorf("save: %w", err)
		}
		fmt.Fprintf(i.out, "saved %s\n", rest[0])
		i.notifySave(rest[0])
	case "copy":
		snap := sess.Snapshot()
		if snap == nil {
			return false, fmt.Errorf("copy: %w", session.ErrUnbound)
		}
		if err := clipboard.WriteImage(snap); err != nil {
			return false, fmt.Errorf("copy: %w", err)
		}
		fmt.Fprintln(i.out, "copied picture to clipboard")
		i.notifyCopy("picture", snap)
	case "status":
		i.printStatus()
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return false, nil
}

func (i *interactiveCmd) printStatus() {
	sess := i.active()
	c := sess.SelectedColor()
	sx, _ := sess.Transform().Scale()
	ox, oy := sess.Transform().Offset()
	if sess.Bound() {
		fmt.Fprintf(i.out, "page: %v\n", sess.Size())
	} else {
		fmt.Fprintln(i.out, "page: none")
	}
	fmt.Fprintf(i.out, "view: %v scale %.3f offset (%.1f,%.1f)\n", sess.Surface(), sx, ox, oy)
	fmt.Fprintf(i.out, "color: %s\n", theme.Hex(color.RGBA(c)))
}

func floats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for n, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		out[n] = v
	}
	return out, nil
}
