package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/maldren/cxpr"
)

func main() {
	log.SetFlags(0)
	var (
		varsfile string
		echo     bool
		binds    []cxpr.Binding
	)
	addgiven := func(s string) error {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		b, err := bind(strings.TrimSpace(name), val)
		if err != nil {
			return err
		}
		binds = append(binds, b)
		return nil
	}
	flag.Func("given", "name=value variable definition (any number of times; value is an expression)", addgiven)
	flag.StringVar(&varsfile, "vars", "", "YAML file of name: expression variable definitions")
	flag.BoolVar(&echo, "echo", false, "print compiled trees")
	flag.Parse()

	if varsfile != "" {
		data, err := os.ReadFile(varsfile)
		if err != nil {
			log.Fatal(err)
		}
		var defs map[string]string
		if err := yaml.Unmarshal(data, &defs); err != nil {
			log.Fatalf("%s: %v", varsfile, err)
		}
		for name, val := range defs {
			b, err := bind(name, val)
			if err != nil {
				log.Fatalf("%s: %v", varsfile, err)
			}
			binds = append(binds, b)
		}
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			e, err := cxpr.Compile(arg, binds)
			if err != nil {
				log.Fatal(err)
			}
			if echo {
				fmt.Print(e.Dump())
			}
			fmt.Println(cxpr.FormatNum(e.Eval()))
		}
		return
	}
	repl(binds, echo)
}

// bind evaluates val as a bindings-free expression and binds the result to
// name.
func bind(name, val string) (cxpr.Binding, error) {
	r, err := cxpr.Interp(val)
	if err != nil {
		return cxpr.Binding{}, fmt.Errorf("setting %s: %v", name, err)
	}
	p := new(complex128)
	*p = r
	return cxpr.Binding{Name: name, Value: p}, nil
}

func repl(binds []cxpr.Binding, echo bool) {
	tty := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	sc := bufio.NewScanner(os.Stdin)
	for {
		if tty {
			fmt.Print("> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := cxpr.Compile(line, binds)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if echo {
			fmt.Print(e.Dump())
		}
		fmt.Println(cxpr.FormatNum(e.Eval()))
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}
