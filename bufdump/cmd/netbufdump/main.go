package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/netbuf/netbuf"
	"github.com/netbuf/netbuf/bufdump"
	"github.com/netbuf/netbuf/bytebuffer"
)

var (
	layout  = flag.String("layout", "u8", "comma separated field kinds, repeated until the end of the file")
	peek    = flag.Bool("peek", false, "only print the first field, without consuming it")
	verbose = flag.Bool("v", false, "enable logging")
)

var (
	offsetColor = color.New(color.FgHiBlack).SprintFunc()
	kindColor   = color.New(color.FgCyan).SprintFunc()
	errColor    = color.New(color.FgRed).SprintFunc()
)

func printValue(v bufdump.Value) {
	fmt.Printf("\t[%v] %-8v %v\n", offsetColor(v.Offset), kindColor(v.Field), v.Val)
}

func run() int {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: netbufdump [-layout i32,str,...] [-peek] <file>")
		return 2
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	netbuf.EnableLogging(*verbose)

	fields, err := bufdump.ParseLayout(*layout)
	if err != nil {
		fmt.Fprintln(os.Stderr, errColor(err))
		return 2
	}

	file := flag.Arg(0)
	b, err := netbuf.ReadCapture(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, errColor(err))
		return 1
	}
	defer b.Close()

	fmt.Printf(`
File      = %v
Length    = %v
Layout    = %v

`, file, b.Len(), fields)

	if *peek {
		v, err := bufdump.Read(b, fields[0], false)
		if err != nil {
			fmt.Fprintln(os.Stderr, errColor(err))
			return 1
		}

		printValue(bufdump.Value{Offset: b.Pos(), Field: fields[0], Val: v})
		fmt.Printf("\nRemaining = %v\n", b.Remaining())
		return 0
	}

	vals, err := bufdump.Dump(b, fields)
	for _, v := range vals {
		printValue(v)
	}

	fmt.Printf("\nRemaining = %v\n", b.Remaining())

	if err != nil {
		fmt.Fprintln(os.Stderr, errColor(err))
		if bytebuffer.IsUnderrun(err) {
			return 3
		}
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
