package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/example/colorbook/internal/config"
	"github.com/example/colorbook/internal/notify"
	"github.com/example/colorbook/internal/session"
	"github.com/example/colorbook/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	copyAlerts  bool
	verbose     bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

// subcommand returns a copy of r named for the given command, for help
// output and shared settings.
func (r *root) subcommand(name string) *root {
	if r == nil {
		return &root{program: "colorbook " + name}
	}
	sub := *r
	sub.fs = nil
	sub.program = strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &sub
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("colorbook", flag.ExitOnError),
		program:  "colorbook",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a picture")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.verbose, "v", false, "log missed and dropped taps")

	// Precedence: CLI > Env > Config > Default. An empty flag falls through.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.Embedded(), ", ")+")")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "play":
		cmd, err = parsePlayCmd(subArgs, r)
	case "fill":
		cmd, err = parseFillCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "palette":
		cmd, err = parsePaletteCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolveTheme picks the theme named on the command line, in
// COLORBOOK_THEME or in the config file, in that order.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("COLORBOOK_THEME")
	}
	if name == "" && r.config != nil {
		name = r.config.Theme
	}
	if r.config != nil {
		if t, ok := r.config.Themes[name]; ok {
			return t
		}
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (r *root) cfg() *config.Config {
	if r == nil || r.config == nil {
		return config.New()
	}
	return r.config
}

func (r *root) currentTheme() *theme.Theme {
	if r == nil || r.activeTheme == nil {
		return theme.Default()
	}
	return r.activeTheme
}

// newSession creates a session tuned by the config file.
func (r *root) newSession(opts ...session.Option) *session.Session {
	cfg := r.cfg()
	base := []session.Option{
		session.WithSampler(cfg.Fill.Sampler()),
		session.WithWallRule(cfg.Fill.WallRule()),
		session.WithBackground(r.currentTheme().Paper),
	}
	if len(cfg.Palette) > 0 {
		base = append(base, session.WithColor(opaque(cfg.Palette[0].Color)))
	}
	if r != nil {
		base = append(base, session.WithVerbose(r.verbose))
	}
	return session.New(append(base, opts...)...)
}

// parseColor accepts a palette swatch name, a color name or a hex color.
func (r *root) parseColor(s string) (color.NRGBA, error) {
	if sw, ok := r.cfg().Swatch(s); ok {
		return opaque(sw.Color), nil
	}
	c, err := theme.ParseColor(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	return opaque(c), nil
}

func opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func (r *root) notifySave(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Save(path)
}

func (r *root) notifyCopy(detail string, img image.Image) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail, img)
}
