// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/intcode/robot"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

var debug bool

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "PC: %v, relative base: %v, mem size: %v\n",
			i.PC, i.RelativeBase(), len(i.Mem))
	}
	os.Exit(1)
}

func main() {
	var fileName = flag.String("program", "input.txt", "load program source from `filename`")
	var dump = flag.Bool("dump", false, "disassemble the program and exit")
	var trace = flag.Bool("trace", false, "trace executed instructions to stderr")
	var robotMode = flag.Bool("robot", false, "run the painting robot instead of console I/O")
	var start = flag.Int("start", 0, "starting panel color for -robot (0 black, 1 white)")
	var render = flag.Bool("render", false, "draw the painted canvas after -robot")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	prog, err := vm.Load(*fileName)
	if err != nil {
		atExit(nil, err)
	}

	if *dump {
		atExit(nil, vm.DisassembleAll(prog, 0, os.Stdout))
		return
	}

	var opts []vm.Option
	if *trace {
		opts = append(opts, vm.WithLogf(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	}

	if *robotMode {
		canvas, err := robot.Paint(prog, robot.Color(*start), opts...)
		if err != nil {
			atExit(nil, err)
		}
		fmt.Printf("%d panels painted\n", len(canvas))
		if *render {
			atExit(nil, robot.Render(os.Stdout, canvas))
		}
		return
	}

	i, err := vm.New(prog, vm.NewConsole(os.Stdin, os.Stdout), opts...)
	if err != nil {
		atExit(nil, err)
	}
	if err = i.Run(); err != nil && errors.Cause(err) != io.EOF {
		atExit(i, err)
	}
}
