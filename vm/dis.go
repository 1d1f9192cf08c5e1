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
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
)

// writeParam writes one operand: position parameters as [addr], immediates as
// bare values, relative parameters as [rb+off].
func writeParam(w io.Writer, p param) {
	switch p.mode {
	case ModeImmediate:
		io.WriteString(w, strconv.FormatInt(int64(p.raw), 10))
	case ModePosition:
		io.WriteString(w, "[")
		io.WriteString(w, strconv.FormatInt(int64(p.raw), 10))
		io.WriteString(w, "]")
	case ModeRelative:
		if p.raw < 0 {
			fmt.Fprintf(w, "[rb%d]", p.raw)
		} else {
			fmt.Fprintf(w, "[rb+%d]", p.raw)
		}
	}
}

// Disassemble writes a disassembly of the instruction at position pc in m to
// the specified io.Writer and returns the position of the next instruction.
// Cells that do not decode as an instruction are written as "dat" words and
// skipped one at a time.
func Disassemble(m Image, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*ici.ErrWriter)
	if ew == nil {
		ew = ici.NewErrWriter(w)
	}

	in, derr := decode(m, pc)
	if derr != nil {
		io.WriteString(ew, "dat ")
		io.WriteString(ew, strconv.FormatInt(int64(m.Get(Cell(pc))), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, opcodeNames[in.op])
	for k := 0; k < in.n; k++ {
		ew.Write([]byte{' '})
		writeParam(ew, in.p[k])
	}
	return pc + in.width(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in m to the specified
// io.Writer. The base argument specifies the real address of the first cell
// (m[0]). It will return any write error.
func DisassembleAll(m Image, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(m); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(m, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
