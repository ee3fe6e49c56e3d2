// Package app implements the traverse command: it loads a saved project,
// runs the traverse engine and prints the result.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/katalvlaran/lvsurvey/internal/config"
	"github.com/katalvlaran/lvsurvey/internal/logging"
	"github.com/katalvlaran/lvsurvey/internal/report"
	"github.com/katalvlaran/lvsurvey/project"
	"github.com/katalvlaran/lvsurvey/traverse"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const usage = `usage: traverse [flags] <command> [args]

commands:
  compute <project>       compute, adjust and print all stations
  area <project>          print the area of a closed traverse
  closure <project>       print the misclosure of the unadjusted stations
  convert <from> <to>     rewrite a project in the format of <to>'s extension
  delete <project>        remove a project file
  list                    list project files in --dir

flags:
`

// errUsage marks command-line mistakes.
var errUsage = errors.New("usage error")

// Run executes the command described by argv and returns the exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("traverse", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.RegisterFlags(fs)
	kind := fs.String("kind", "", "override the saved traverse type: Open or Closed")
	help := fs.BoolP("help", "h", false, "show this help")

	if err := fs.Parse(argv); err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr, fs)
		return ExitUsage
	}
	if *help || fs.NArg() == 0 {
		printUsage(stdout, fs)
		return ExitOK
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, config.ErrInvalid) {
			return ExitUsage
		}
		return ExitError
	}
	log := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)

	r := &runner{
		cfg:   cfg,
		log:   log,
		store: project.NewStore(cfg.Project.Dir),
		kind:  *kind,
		out:   stdout,
	}
	if err := r.dispatch(fs.Arg(0), fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
			printUsage(stderr, fs)
			return ExitUsage
		}
		log.Error("command failed", "command", fs.Arg(0), "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, usage)
	fmt.Fprint(w, fs.FlagUsages())
}

type runner struct {
	cfg   *config.Config
	log   *slog.Logger
	store *project.Store
	kind  string
	out   io.Writer
}

func (r *runner) dispatch(cmd string, args []string) error {
	want := map[string]int{"compute": 1, "area": 1, "closure": 1, "convert": 2, "delete": 1, "list": 0}
	n, ok := want[cmd]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", errUsage, cmd, n, len(args))
	}

	switch cmd {
	case "compute":
		return r.compute(args[0])
	case "area":
		return r.area(args[0])
	case "closure":
		return r.closure(args[0])
	case "convert":
		return r.convert(args[0], args[1])
	case "delete":
		if err := r.store.Delete(args[0]); err != nil {
			return err
		}
		r.log.Info("project deleted", "project", args[0])
		fmt.Fprintf(r.out, "Deleted %s\n", filepath.Base(args[0]))
		return nil
	default: // list
		names, err := r.store.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(r.out, name)
		}
		return nil
	}
}

// load reads a project, applies the --kind override and recomputes it.
func (r *runner) load(name string) (*project.Project, error) {
	p, err := r.store.Load(name)
	if err != nil {
		return nil, err
	}
	if r.kind != "" {
		k, err := traverse.ParseKind(r.kind)
		if err != nil {
			return nil, fmt.Errorf("%w: --kind: %w", errUsage, err)
		}
		p.SetKind(k)
	}
	r.log.Debug("project loaded", "project", name, "kind", p.Kind(), "rows", p.Len())

	if err := p.Recompute(traverse.WithDegenerateTolerance(r.cfg.Adjust.DegenerateTolerance)); err != nil {
		return nil, err
	}
	adj := p.Adjustment()
	if err := adj.Err(); err != nil {
		r.log.Warn("adjustment skipped", "project", name, "reason", err)
	}
	r.log.Info("traverse computed", "project", name, "points", len(p.Points()), "status", adj.Status)
	return p, nil
}

func (r *runner) compute(name string) error {
	p, err := r.load(name)
	if err != nil {
		return err
	}
	res := report.Result{
		Name:     filepath.Base(name),
		Kind:     p.Kind(),
		Points:   p.Points(),
		Adjusted: p.Adjustment(),
	}
	if p.Kind() == traverse.Closed {
		c, _ := p.Closure()
		res.Closure = &c
		a, err := p.Area()
		if err != nil {
			return err
		}
		res.Area = &a
	}
	return report.Write(r.out, res, r.cfg.Output.Format, r.cfg.Output.Precision)
}

func (r *runner) area(name string) error {
	p, err := r.load(name)
	if err != nil {
		return err
	}
	a, err := p.Area()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Area: %.2f sq.m\n", a)
	return nil
}

func (r *runner) closure(name string) error {
	p, err := r.load(name)
	if err != nil {
		return err
	}
	c, err := p.Closure()
	if err != nil {
		return err
	}
	return report.Write(r.out, report.Result{
		Name:     filepath.Base(name),
		Kind:     p.Kind(),
		Points:   p.Points(),
		Adjusted: p.Adjustment(),
		Closure:  &c,
	}, r.cfg.Output.Format, r.cfg.Output.Precision)
}

func (r *runner) convert(from, to string) error {
	p, err := r.store.Load(from)
	if err != nil {
		return err
	}
	if err := r.store.Save(to, p); err != nil {
		return err
	}
	r.log.Info("project converted", "from", from, "to", to)
	fmt.Fprintf(r.out, "Saved to %s\n", filepath.Base(to))
	return nil
}
