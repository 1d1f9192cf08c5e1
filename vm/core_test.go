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

package vm_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C []vm.Cell

// runScript runs code on a fresh clone with scripted input and returns the
// instance and its output log.
func runScript(t *testing.T, code C, input ...string) (*vm.Instance, *vm.Script) {
	t.Helper()
	sio := vm.NewScript(input...)
	i, err := vm.New(vm.Image(code).Clone(), sio)
	require.NoError(t, err)
	require.NoError(t, i.Run())
	return i, sio
}

var coreTests = [...]struct {
	name  string
	code  C
	input []string
	mem   C        // expected terminal tape, nil to skip
	out   []string // expected output log, nil to skip
}{
	{"add", C{1, 0, 0, 0, 99}, nil, C{2, 0, 0, 0, 99}, nil},
	{"mul", C{2, 3, 0, 3, 99}, nil, C{2, 3, 0, 6, 99}, nil},
	{"mulStore", C{2, 4, 4, 5, 99, 0}, nil, C{2, 4, 4, 5, 99, 9801}, nil},
	{"selfModify", C{1, 1, 1, 4, 99, 5, 6, 0, 99}, nil, C{30, 1, 1, 4, 2, 5, 6, 0, 99}, nil},
	{"eqPosTrue", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, []string{"8"}, C{3, 9, 8, 9, 10, 9, 4, 9, 99, 1, 8}, []string{"1"}},
	{"eqPosFalse", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, []string{"7"}, C{3, 9, 8, 9, 10, 9, 4, 9, 99, 0, 8}, []string{"0"}},
	{"ltPosTrue", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, []string{"7"}, nil, []string{"1"}},
	{"ltPosFalse", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, []string{"8"}, nil, []string{"0"}},
	{"eqImmTrue", C{3, 3, 1108, -1, 8, 3, 4, 3, 99}, []string{"8"}, nil, []string{"1"}},
	{"eqImmFalse", C{3, 3, 1108, -1, 8, 3, 4, 3, 99}, []string{"7"}, nil, []string{"0"}},
	{"ltImmTrue", C{3, 3, 1107, -1, 8, 3, 4, 3, 99}, []string{"7"}, nil, []string{"1"}},
	{"ltImmFalse", C{3, 3, 1107, -1, 8, 3, 4, 3, 99}, []string{"8"}, nil, []string{"0"}},
	{"jnzPosTaken", C{3, 12, 5, 12, 15, 2, 13, 14, 14, 4, 14, 99, -1, 0, 1, 9}, []string{"1"}, nil, []string{"1"}},
	{"jnzPosNegTaken", C{3, 12, 5, 12, 15, 2, 13, 14, 14, 4, 14, 99, -1, 0, 1, 9}, []string{"-1"}, nil, []string{"1"}},
	{"jnzPosNotTaken", C{3, 12, 5, 12, 15, 2, 13, 14, 14, 4, 14, 99, -1, 0, 1, 9}, []string{"0"}, nil, []string{"0"}},
	{"jzPosTaken", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, []string{"0"}, nil, []string{"0"}},
	{"jzImmTaken", C{3, 3, 1106, -1, 9, 1101, 0, 1, 12, 4, 12, 99, 0}, []string{"0"}, nil, []string{"0"}},
	{"jzImmNotTaken", C{3, 3, 1106, -1, 9, 1101, 0, 1, 12, 4, 12, 99, 0}, []string{"1"}, nil, []string{"1"}},
	{"inputTrimmed", C{3, 5, 4, 5, 99, -1}, []string{" 42\n"}, C{3, 5, 4, 5, 99, 42}, []string{"42"}},
	{"relWrite", C{109, 5, 203, 2, 99}, []string{"7"}, C{109, 5, 203, 2, 99, 0, 0, 7}, nil},
	{"bigMul", C{1102, 34915192, 34915192, 7, 4, 7, 99, 0}, nil, C{1102, 34915192, 34915192, 7, 4, 7, 99, 1219070632396864}, []string{"1219070632396864"}},
	{"bigImm", C{104, 1125899906842624, 99}, nil, C{104, 1125899906842624, 99}, []string{"1125899906842624"}},
}

func TestCore(t *testing.T) {
	for _, test := range coreTests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			i, sio := runScript(t, test.code, test.input...)
			if test.mem != nil {
				assert.Equal(t, vm.Image(test.mem), i.Mem)
			}
			if test.out != nil {
				assert.Equal(t, test.out, sio.Output())
			}
		})
	}
}

// The cmp8 program prints 999, 1000 or 1001 depending on whether its input is
// below, equal to or above 8. It mixes position and immediate modes, jumps
// and comparisons.
var cmp8 = C{
	3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
	1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
	999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99,
}

func TestCore_cmp8(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{"7", "999"},
		{"8", "1000"},
		{"9", "1001"},
	} {
		_, sio := runScript(t, cmp8, test.input)
		assert.Equal(t, []string{test.want}, sio.Output())
	}
}

// The quine program copies itself to the output using relative addressing, a
// grow-on-write counter cell and self-reads beyond the initial tape.
func TestCore_quine(t *testing.T) {
	code := C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}

	i, sio := runScript(t, code)

	want := make([]string, len(code))
	for n, v := range code {
		want[n] = strconv.FormatInt(int64(v), 10)
	}
	assert.Equal(t, want, sio.Output())

	// the counter and comparison cells grew the tape to 102 cells
	wantMem := append(vm.Image(code).Clone(), make(vm.Image, 86)...)
	wantMem[100] = 16
	wantMem[101] = 1
	assert.Equal(t, wantMem, i.Mem)
}

func TestCore_determinism(t *testing.T) {
	prog := vm.Image(cmp8)
	var mems []vm.Image
	var outs [][]string
	for n := 0; n < 2; n++ {
		sio := vm.NewScript("8")
		i, err := vm.New(prog.Clone(), sio)
		require.NoError(t, err)
		require.NoError(t, i.Run())
		mems = append(mems, i.Mem)
		outs = append(outs, sio.Output())
	}
	assert.Equal(t, mems[0], mems[1])
	assert.Equal(t, outs[0], outs[1])
}

func TestCore_errors(t *testing.T) {
	for _, test := range []struct {
		name  string
		code  C
		input []string
		want  string
	}{
		{"unknownOpcode", C{98, 0, 0, 0}, nil, "unknown opcode 98"},
		{"invalidMode", C{302, 0, 0, 0, 99}, nil, "invalid addressing mode 3"},
		{"immediateTarget", C{11101, 1, 1, 0, 99}, nil, "immediate parameter 3 used as write target"},
		{"negativeRead", C{4, -1, 99}, nil, "negative address -1"},
		{"negativeWrite", C{3, -1, 99}, []string{"5"}, "negative address -1"},
		{"negativeRelWrite", C{109, -3, 203, 1, 99}, []string{"5"}, "negative address -2"},
		{"negativeJump", C{1105, 1, -4, 99}, nil, "jump to negative address -4"},
		{"inputExhausted", C{3, 0, 99}, nil, "ran out of input"},
		{"inputNotANumber", C{3, 0, 99}, []string{"abc"}, "input"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			i, err := vm.New(vm.Image(test.code).Clone(), vm.NewScript(test.input...))
			require.NoError(t, err)
			err = i.Run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestInstance_InstructionCount(t *testing.T) {
	i, _ := runScript(t, C{1, 0, 0, 0, 99})
	assert.Equal(t, int64(2), i.InstructionCount())
}

func TestInstance_RelativeBase(t *testing.T) {
	i, _ := runScript(t, C{109, 19, 109, -4, 99})
	assert.Equal(t, vm.Cell(15), i.RelativeBase())
}

func BenchmarkRun(b *testing.B) {
	// decrement a counter from 1000 to 0
	prog := vm.Image{1001, 9, -1, 9, 1005, 9, 0, 99, 0, 1000}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i, err := vm.New(prog.Clone(), vm.NewScript())
		if err != nil {
			b.Fatal(err)
		}
		if err = i.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

func TestWithLogf(t *testing.T) {
	var lines []string
	logf := func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	i, err := vm.New(vm.Image{1, 0, 0, 0, 99}, vm.NewScript(), vm.WithLogf(logf))
	require.NoError(t, err)
	require.NoError(t, i.Run())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "add [0] [0] [0]")
	assert.Contains(t, lines[1], "halt")
}
