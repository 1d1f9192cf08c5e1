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

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Run starts execution of the VM and returns when the program halts.
//
// If an error occurs, the PC will point at the instruction that triggered the
// error. Decode errors, address errors and input parse errors are fatal: the
// program cannot safely continue past them.
//
// If the I/O boundary reports io.EOF (input stream closed, or the peer of a
// Pipe gone), the VM exits and Run returns io.EOF. This is a normal exit
// condition in most use cases.
func (i *Instance) Run() error {
	for {
		in, err := decode(i.Mem, i.PC)
		if err != nil {
			return err
		}
		if i.logf != nil {
			var b strings.Builder
			Disassemble(i.Mem, i.PC, &b)
			i.logf("% 8d\t%s", i.PC, b.String())
		}
		jumped := false
		switch in.op {
		case OpAdd, OpMul, OpLessThan, OpEquals:
			a, err := i.load(in, 0)
			if err != nil {
				return err
			}
			b, err := i.load(in, 1)
			if err != nil {
				return err
			}
			addr, err := i.target(in, 2)
			if err != nil {
				return err
			}
			var v Cell
			switch in.op {
			case OpAdd:
				v = a + b
			case OpMul:
				v = a * b
			case OpLessThan:
				if a < b {
					v = 1
				}
			case OpEquals:
				if a == b {
					v = 1
				}
			}
			i.Mem.Put(addr, v)
		case OpInput:
			addr, err := i.target(in, 0)
			if err != nil {
				return err
			}
			s, err := i.io.ReadValue()
			if err != nil {
				return err
			}
			v, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if perr != nil {
				return errors.Wrapf(perr, "pc=%d: input", in.pc)
			}
			i.Mem.Put(addr, Cell(v))
		case OpOutput:
			v, err := i.load(in, 0)
			if err != nil {
				return err
			}
			if err = i.io.WriteValue(strconv.FormatInt(int64(v), 10)); err != nil {
				return err
			}
		case OpJumpIfTrue, OpJumpIfFalse:
			v, err := i.load(in, 0)
			if err != nil {
				return err
			}
			if (in.op == OpJumpIfTrue) == (v != 0) {
				t, err := i.load(in, 1)
				if err != nil {
					return err
				}
				if t < 0 {
					return errors.Errorf("pc=%d: jump to negative address %d", in.pc, t)
				}
				i.PC = int(t)
				jumped = true
			}
		case OpAdjustRelBas:
			v, err := i.load(in, 0)
			if err != nil {
				return err
			}
			i.rel += v
		case OpHalt:
			i.insCount++
			return nil
		}
		if !jumped {
			i.PC += in.width()
		}
		i.insCount++
	}
}
