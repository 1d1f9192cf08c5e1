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

import "github.com/pkg/errors"

// Mode is a parameter addressing mode.
type Mode int

// Parameter addressing modes. A position parameter addresses the tape
// directly, an immediate parameter is a literal, a relative parameter
// addresses the tape at an offset from the relative base.
const (
	ModePosition Mode = iota
	ModeImmediate
	ModeRelative
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "pos"
	case ModeImmediate:
		return "imm"
	case ModeRelative:
		return "rel"
	}
	return "???"
}

// param is a decoded parameter: its addressing mode and the raw word read
// from the tape.
type param struct {
	mode Mode
	raw  Cell
}

// instr is a decoded instruction. It is a transient view over a window of the
// tape, reconstructed fresh every cycle so that self-modifying programs see
// their own writes.
type instr struct {
	op Cell
	pc int
	p  [3]param
	n  int
}

// width returns the number of cells to advance the PC past the instruction.
func (in instr) width() int { return in.n + 1 }

// mode digit for parameter k of instruction word w is w / modeDiv[k] % 10.
var modeDiv = [...]Cell{100, 1000, 10000}

// decode reads the instruction at pc, splitting the word into opcode and
// mode spec, and decodes one parameter per arity slot at consecutive
// positions starting at pc+1.
func decode(mem Image, pc int) (instr, error) {
	word := mem.Get(Cell(pc))
	op := word % 100
	n := arity(op)
	if n < 0 {
		return instr{}, errors.Errorf("pc=%d: unknown opcode %d (instruction word %d)", pc, op, word)
	}
	in := instr{op: op, pc: pc, n: n}
	for k := 0; k < n; k++ {
		d := word / modeDiv[k] % 10
		if d < 0 || d > 2 {
			return instr{}, errors.Errorf("pc=%d: invalid addressing mode %d for parameter %d (instruction word %d)", pc, d, k+1, word)
		}
		in.p[k] = param{Mode(d), mem.Get(Cell(pc + 1 + k))}
	}
	return in, nil
}

// load resolves parameter k for reading and returns its value. Reads beyond
// the current tape length yield 0 and never grow the tape.
func (i *Instance) load(in instr, k int) (Cell, error) {
	p := in.p[k]
	var addr Cell
	switch p.mode {
	case ModeImmediate:
		return p.raw, nil
	case ModePosition:
		addr = p.raw
	case ModeRelative:
		addr = i.rel + p.raw
	}
	if addr < 0 {
		return 0, errors.Errorf("pc=%d: negative address %d resolved from parameter %d", in.pc, addr, k+1)
	}
	return i.Mem.Get(addr), nil
}

// target resolves parameter k to a writable address. Immediate parameters are
// never valid write targets.
func (i *Instance) target(in instr, k int) (Cell, error) {
	p := in.p[k]
	var addr Cell
	switch p.mode {
	case ModeImmediate:
		return 0, errors.Errorf("pc=%d: immediate parameter %d used as write target", in.pc, k+1)
	case ModePosition:
		addr = p.raw
	case ModeRelative:
		addr = i.rel + p.raw
	}
	if addr < 0 {
		return 0, errors.Errorf("pc=%d: negative address %d resolved from parameter %d", in.pc, addr, k+1)
	}
	return addr, nil
}
