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

package vm

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int   // Program Counter (aka. Instruction Pointer)
	Mem      Image // Memory tape
	rel      Cell  // relative base
	io       IO
	logf     func(format string, args ...interface{})
	insCount int64
}

// Option interface
type Option func(*Instance) error

// WithLogf sets a trace function called once per executed instruction with a
// disassembly of that instruction. Mostly useful to watch a misbehaving
// program. The default is no tracing.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(i *Instance) error {
		i.logf = logf
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The mem parameter is the Cell slice used as memory by the VM, usually
// obtained from Parse or Load. The instance takes ownership of the slice for
// the duration of the run and will grow it on demand; callers that want to
// reuse a parsed program across runs should pass a Clone.
//
// The io parameter is the I/O boundary servicing the input and output
// instructions. Options will be set by calling SetOptions.
func New(mem Image, io IO, opts ...Option) (*Instance, error) {
	i := &Instance{
		PC:  0,
		Mem: mem,
		io:  io,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// RelativeBase returns the current relative base.
func (i *Instance) RelativeBase() Cell {
	return i.rel
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
