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

// Intcode Virtual Machine Opcodes.
const (
	OpAdd          Cell = 1
	OpMul          Cell = 2
	OpInput        Cell = 3
	OpOutput       Cell = 4
	OpJumpIfTrue   Cell = 5
	OpJumpIfFalse  Cell = 6
	OpLessThan     Cell = 7
	OpEquals       Cell = 8
	OpAdjustRelBas Cell = 9
	OpHalt         Cell = 99
)

var opcodeNames = map[Cell]string{
	OpAdd:          "add",
	OpMul:          "mul",
	OpInput:        "in",
	OpOutput:       "out",
	OpJumpIfTrue:   "jnz",
	OpJumpIfFalse:  "jz",
	OpLessThan:     "lt",
	OpEquals:       "eq",
	OpAdjustRelBas: "arb",
	OpHalt:         "halt",
}

// arity returns the number of parameters for the given opcode, or -1 if the
// opcode is unknown. The instruction width is arity+1.
func arity(op Cell) int {
	switch op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 3
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	case OpInput, OpOutput, OpAdjustRelBas:
		return 1
	case OpHalt:
		return 0
	}
	return -1
}
