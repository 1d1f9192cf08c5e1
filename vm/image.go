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
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Image encapsulates a VM's memory tape. The tape grows on writes, never on
// reads, and never shrinks.
type Image []Cell

// Parse reads a comma-separated list of signed decimal integers from r and
// returns it as an Image. Whitespace around values, including a trailing
// newline, is ignored; empty fields are skipped.
func Parse(r io.Reader) (Image, error) {
	src, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	fields := strings.Split(string(src), ",")
	img := make(Image, 0, len(fields))
	for n, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse: value %d (%q)", n, f)
		}
		img = append(img, Cell(v))
	}
	return img, nil
}

// Load loads an image from the program source file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return img, nil
}

// Get returns the Cell at address addr. Reads beyond the current tape length
// return 0 and do not grow the tape. The caller must ensure addr is not
// negative.
func (m Image) Get(addr Cell) Cell {
	if int(addr) >= len(m) {
		return 0
	}
	return m[addr]
}

// Put writes v at address addr, growing the tape zero-filled to addr+1 first
// if needed. The caller must ensure addr is not negative.
func (m *Image) Put(addr, v Cell) {
	if n := int(addr) + 1 - len(*m); n > 0 {
		*m = append(*m, make(Image, n)...)
	}
	(*m)[addr] = v
}

// Clone returns an independent copy of the image. Use it to run the same
// parsed program several times, e.g. when sweeping noun/verb parameters.
func (m Image) Clone() Image {
	t := make(Image, len(m))
	copy(t, m)
	return t
}

// String returns the image as comma-separated decimal values, the same format
// accepted by Parse.
func (m Image) String() string {
	var b strings.Builder
	for n, v := range m {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
