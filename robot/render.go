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

package robot

import (
	"io"

	"github.com/db47h/intcode/internal/ici"
)

// Render draws the canvas to w, top row first, white panels as '#', black and
// unpainted panels as ' '. An empty canvas writes nothing.
func Render(w io.Writer, canvas Canvas) error {
	if len(canvas) == 0 {
		return nil
	}
	var minX, maxX, minY, maxY int
	first := true
	for p := range canvas {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	ew := ici.NewErrWriter(w)
	row := make([]byte, maxX-minX+2)
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			b := byte(' ')
			if canvas[Point{x, y}] == White {
				b = '#'
			}
			row[x-minX] = b
		}
		row[len(row)-1] = '\n'
		ew.Write(row)
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
