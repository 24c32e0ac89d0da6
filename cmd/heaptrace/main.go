package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	verify := flag.Bool("verify", false, "run the consistency checker after every operation")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: heaptrace [-verify] <trace-file>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	stats, err := runTrace(f, *verify)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(stats)
}
