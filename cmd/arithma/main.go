package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/arithma"
)

func main() {
	log.SetFlags(0)
	var (
		inname, unitfile string
		with             [][2]string
		nl, rad, sci     bool
		solve, iter, tr  bool
		prec, sf         int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=expr", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&unitfile, "units", "", "TOML or YAML file of additional unit families")
	flag.Func("given", "name=expr variable definition (any number of times)", addwith)
	flag.IntVar(&prec, "p", arithma.DefaultPrec, "precision of calculations in bits")
	flag.IntVar(&sf, "sf", 10, "significant figures of results")
	flag.BoolVar(&rad, "rad", false, "use radians instead of degrees")
	flag.BoolVar(&sci, "sci", false, "print results in scientific notation")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&solve, "solve", false, "find the roots of the polynomial whose coefficients are the arguments, highest degree first")
	flag.BoolVar(&iter, "iterative", false, "find roots by Durand-Kerner iteration even below degree 5")
	flag.BoolVar(&tr, "trace", false, "log variable changes and re-evaluations")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if sf <= 0 {
		log.Fatalf("significant figures (%d) must be positive", sf)
	}

	reg := arithma.DefaultUnits()
	if unitfile != "" {
		if err := loadUnits(reg, unitfile); err != nil {
			log.Fatal(err)
		}
	}
	opts := []arithma.EnvOption{arithma.Prec(uint(prec)), arithma.WithUnits(reg)}
	if tr {
		opts = append(opts, arithma.Trace(log.New(os.Stderr, "trace: ", 0)))
	}
	env := arithma.NewEnvironment(opts...)
	ctx := arithma.EvalContext{Radians: rad, Scientific: sci}
	for _, d := range with {
		in := env.NewInterpreter()
		if _, err := in.EvaluateString(ctx, d[1], arithma.AssignTo(d[0])); err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
	}
	c := calc{env: env, ctx: ctx, sf: sf, iterative: iter, out: os.Stdout}

	if solve {
		roots, err := c.solve(flag.Args())
		if err != nil {
			log.Fatal(err)
		}
		c.roots(roots)
		return
	}

	if inname == "" && flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		os.Exit(c.repl())
	}

	var ins []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		b, err := io.ReadAll(f)
		if err != nil {
			log.Fatal(err)
		}
		if nl {
			ins = append(ins, strings.Split(string(b), "\n")...)
		} else {
			ins = append(ins, string(b))
		}
	}
	ins = append(ins, flag.Args()...)

	failed := false
	for _, src := range ins {
		if strings.TrimSpace(src) == "" {
			continue
		}
		if err := c.cell(src); err != nil {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}

// calc evaluates cells against an environment and prints their results.
type calc struct {
	env       *arithma.Environment
	ctx       arithma.EvalContext
	sf        int
	iterative bool
	out       io.Writer

	// cells holds the interpreters of assignments, by name, so that later
	// assignments to the same name replace them.
	cells map[string]*arithma.Interpreter
	// quiet is the interpreter being evaluated directly, which reports its
	// own result.
	quiet *arithma.Interpreter
}

// splitAssign splits a cell of the form "name := expr".
func splitAssign(src string) (name, expr string) {
	k := strings.Index(src, ":=")
	if k < 0 {
		return "", src
	}
	name = strings.TrimSpace(src[:k])
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", src
	}
	return name, src[k+2:]
}

// cell evaluates one line of input and prints its result or error.
func (c *calc) cell(src string) error {
	name, expr := splitAssign(src)
	if name == "" {
		in := c.env.NewInterpreter()
		defer in.Close()
		v, err := in.EvaluateString(c.ctx, expr)
		if err != nil {
			c.fail(expr, err)
			return err
		}
		fmt.Fprintln(c.out, v.Format(c.ctx, c.sf))
		return nil
	}
	if c.cells == nil {
		c.cells = make(map[string]*arithma.Interpreter)
	}
	in := c.cells[name]
	if in == nil {
		in = c.env.NewInterpreter()
		in.OnChange(func(v arithma.Value, err error) {
			if in == c.quiet {
				return
			}
			if err != nil {
				fmt.Fprintf(c.out, "%s: %v\n", name, err)
				return
			}
			fmt.Fprintf(c.out, "%s = %s\n", name, v.Format(c.ctx, c.sf))
		})
	}
	c.quiet = in
	v, err := in.EvaluateString(c.ctx, expr, arithma.AssignTo(name))
	c.quiet = nil
	if err != nil {
		if c.cells[name] == nil {
			in.Close()
		}
		c.fail(expr, err)
		return err
	}
	c.cells[name] = in
	fmt.Fprintf(c.out, "%s = %s\n", name, v.Format(c.ctx, c.sf))
	return nil
}

// fail prints err, marking the column it concerns in src.
func (c *calc) fail(src string, err error) {
	var ie arithma.InputError
	if errors.As(err, &ie) && ie.Pos() > 0 {
		fmt.Fprintln(c.out, src)
		fmt.Fprintf(c.out, "%*s\n", ie.Pos(), "^")
	}
	fmt.Fprintln(c.out, err)
}

// solve evaluates each of exprs as a coefficient, highest degree first, and
// finds the roots of the polynomial they form.
func (c *calc) solve(exprs []string) ([]arithma.Complex, error) {
	in := c.env.NewInterpreter()
	defer in.Close()
	vals := make([]arithma.Value, 0, len(exprs))
	for _, s := range exprs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := in.EvaluateString(c.ctx, s)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q: %w", s, err)
		}
		vals = append(vals, v)
	}
	p, err := arithma.PolynomialFromValues(vals)
	if err != nil {
		return nil, err
	}
	return p.Roots(!c.iterative), nil
}

func (c *calc) roots(roots []arithma.Complex) {
	if len(roots) == 0 {
		fmt.Fprintln(c.out, "no roots")
		return
	}
	for i, z := range roots {
		fmt.Fprintf(c.out, "x%d = %s\n", i+1, z.Text(c.sf, c.ctx.Scientific))
	}
}
