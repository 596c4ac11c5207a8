// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/aluflags/alu"
	"github.com/ezrec/aluflags/console"
	"github.com/ezrec/aluflags/script"
)

func main() {
	var width uint
	var signed bool
	var repA string
	var repB string
	var file string
	var interactive bool
	var verbose bool

	flag.UintVar(&width, "w", uint(alu.DEFAULT_WIDTH), "Operand bit width")
	flag.BoolVar(&signed, "s", false, "Signed mode")
	flag.StringVar(&repA, "a", "decimal", "Representation of operand A (binary, decimal)")
	flag.StringVar(&repB, "b", "decimal", "Representation of operand B (binary, decimal)")
	flag.StringVar(&file, "f", "", ".star script to run")
	flag.BoolVar(&interactive, "i", false, "Interactive console")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	adder, err := alu.NewAlu(alu.Width(width))
	if err != nil {
		log.Fatalf("%v: -w %v: %v", os.Args[0], width, err)
	}

	if verbose {
		adder.Verbose = true
		logrus.SetLevel(logrus.DebugLevel)
	}

	mode := alu.MODE_UNSIGNED
	if signed {
		mode = alu.MODE_SIGNED
	}

	switch {
	case len(file) != 0:
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}
		err = script.Run(adder, file, nil, os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
	case interactive:
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}
		con := console.NewConsole(adder, os.Stdout)
		con.Mode = mode
		err = con.Run()
		if err != nil {
			log.Fatal(err)
		}
	default:
		if flag.NArg() != 2 {
			log.Fatalf("usage: %v [flags] A B", os.Args[0])
		}

		var ops [2]alu.Operand
		for n, name := range []string{repA, repB} {
			raw, rep := console.ParseOperand(flag.Arg(n))
			if raw == flag.Arg(n) {
				// No prefix in the operand; the flag decides.
				rep, err = alu.ParseRepresentation(name)
				if err != nil {
					log.Fatalf("%v: %v: %v", os.Args[0], name, err)
				}
			}
			ops[n], err = adder.Normalize(raw, rep)
			if err != nil {
				log.Fatal(err)
			}
		}

		os.Stdout.WriteString(console.Format(adder.Add(ops[0], ops[1], mode)))
	}
}
