// show-ps2f shows the fields and classification of PS2 float bit patterns and
// the results of arithmetic between them, mostly for checking emulator traces.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/avdva/ps2float"
)

var opKeys = []string{"add", "sub"}

var ops = map[string]struct {
	sym string
	f   func(a, b ps2float.Float) ps2float.Float
}{
	"add": {"+", ps2float.Float.Add},
	"sub": {"-", ps2float.Float.Sub},
}

var opsFlag = flag.String("ops", "", "comma separated list of `operations` to show. Available operations are: "+strings.Join(opKeys, ", ")+". Defaults to all operations")

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("show-ps2f: ")

	if n := flag.NArg(); n < 1 || n > 2 {
		flag.Usage()
		log.Fatal("need exactly one or two arguments")
	}
	showOps, err := parseOps(*opsFlag)
	if err != nil {
		log.Fatal(err)
	}

	var values []ps2float.Float
	for _, arg := range flag.Args() {
		f, err := ps2float.Parse(arg)
		if err != nil {
			log.Fatalf("bad argument %q: %v", arg, err)
		}
		values = append(values, f)
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)
	for i, f := range values {
		if i > 0 {
			fmt.Fprintln(w)
		}
		showValue(w, f)
	}
	if len(values) == 2 {
		fmt.Fprintln(w)
		showResults(w, showOps, values[0], values[1])
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

func parseOps(s string) (map[string]bool, error) {
	all := make(map[string]bool)
	for _, o := range opKeys {
		all[o] = true
	}
	if s == "" {
		return all, nil
	}
	result := make(map[string]bool)
	for _, o := range strings.Split(s, ",") {
		if !all[o] {
			return nil, fmt.Errorf("unknown op %q", o)
		}
		result[o] = true
	}
	return result, nil
}

func class(f ps2float.Float) string {
	switch {
	case f.IsZero():
		return "zero"
	case f.IsDenormalized():
		return "denormalized"
	case f.IsAbnormal():
		return "abnormal"
	default:
		return "normal"
	}
}

func showValue(w io.Writer, f ps2float.Float) {
	text, _ := f.MarshalText()
	fmt.Fprintf(w, "bits:\t%s\n", text)
	fmt.Fprintf(w, "fields:\tsign=%v\texp=%#02x\tmant=%#06x\n", f.Neg(), f.Exp(), f.Mant())
	fmt.Fprintf(w, "class:\t%s\n", class(f))
	fmt.Fprintf(w, "text:\t%s\n", f)
	fmt.Fprintf(w, "exact:\t%s\n", f.Decimal())
}

func showResults(w io.Writer, showOps map[string]bool, a, b ps2float.Float) {
	for _, key := range opKeys {
		if !showOps[key] {
			continue
		}
		op := ops[key]
		r := op.f(a, b)
		text, _ := r.MarshalText()
		fmt.Fprintf(w, "%s\t%s %s %s\t= %s\t%s\n", key, a, op.sym, b, r, text)
	}
}

const help = `show-ps2f shows the PS2 float value of one or two bit patterns.
Usage:
	show-ps2f [-ops] bits [bits]

Where bits is an integer literal in Go syntax, like 0x3f800000. If a second
value is provided, also shows the results of the operations between them.
`
