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

// Package robot couples an Intcode program (the painting robot's "brain") to
// a canvas tracker over channel-backed I/O.
//
// The two sides hold a strictly alternating conversation: the tracker seeds
// it with the color of the starting panel, then the brain repeatedly reads
// the color under the robot, paints the panel, turns, moves, and the tracker
// answers with the color at the new position. The conversation ends when the
// brain halts and its outbound channel closes; that is the designed
// termination path, not an error.
package robot

import (
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Color of a canvas panel.
type Color int

// Panel colors. Unpainted panels read as Black.
const (
	Black Color = iota
	White
)

// String returns the color's wire representation.
func (c Color) String() string {
	return strconv.Itoa(int(c))
}

func parseColor(s string) (Color, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return Black, nil
	case "1":
		return White, nil
	}
	return 0, errors.Errorf("robot: invalid color %q", s)
}

// Turn is a rotation instruction emitted by the brain.
type Turn int

// Rotations, 90 degrees each.
const (
	TurnLeft Turn = iota
	TurnRight
)

func parseTurn(s string) (Turn, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return TurnLeft, nil
	case "1":
		return TurnRight, nil
	}
	return 0, errors.Errorf("robot: invalid turn %q", s)
}

// Direction the robot is facing.
type Direction int

// Facings, clockwise from Up.
const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) turn(t Turn) Direction {
	if t == TurnRight {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Point is a canvas position. Y grows upwards.
type Point struct {
	X, Y int
}

func (d Direction) next(p Point) Point {
	switch d {
	case Up:
		p.Y++
	case Down:
		p.Y--
	case Left:
		p.X--
	case Right:
		p.X++
	}
	return p
}

// Canvas maps painted positions to the color they were last painted.
type Canvas map[Point]Color

// Paint runs prog as the robot's brain, coupled to a canvas tracker on a
// second goroutine, and returns the canvas once both sides have stopped.
//
// The two directions of the conversation are independent cap-1 channels, so
// at most one message is in flight each way. prog is cloned before the run:
// the same parsed program can be painted with several starting colors.
func Paint(prog vm.Image, start Color, opts ...vm.Option) (Canvas, error) {
	toBrain := make(chan string, 1)
	fromBrain := make(chan string, 1)
	halted := make(chan struct{})
	done := make(chan struct{})

	brain, err := vm.New(prog.Clone(), vm.NewPipe(toBrain, fromBrain, done), opts...)
	if err != nil {
		return nil, err
	}

	var canvas Canvas
	var g errgroup.Group
	g.Go(func() error {
		defer close(fromBrain)
		defer close(halted)
		err := brain.Run()
		if errors.Cause(err) == io.EOF {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer close(done)
		var err error
		canvas, err = track(start, fromBrain, toBrain, halted)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return canvas, nil
}

// track is the brain's protocol peer. It seeds the conversation with the
// starting color, then loops: receive color, receive turn, record the color
// at the current position, rotate, move one step, answer with the color at
// the new position. It returns when the brain halts and fromBrain closes.
func track(start Color, in <-chan string, out chan<- string, halted <-chan struct{}) (Canvas, error) {
	canvas := make(Canvas)
	pos := Point{}
	dir := Up

	out <- start.String()
	for s := range in {
		color, err := parseColor(s)
		if err != nil {
			return nil, err
		}
		ts, ok := <-in
		if !ok {
			return nil, errors.New("robot: brain halted mid-message")
		}
		turn, err := parseTurn(ts)
		if err != nil {
			return nil, err
		}
		canvas[pos] = color
		dir = dir.turn(turn)
		pos = dir.next(pos)
		next := Black
		if c, painted := canvas[pos]; painted {
			next = c
		}
		// a brain that halts instead of reading is a stop, not an error
		select {
		case out <- next.String():
		case <-halted:
			return canvas, nil
		}
	}
	return canvas, nil
}
