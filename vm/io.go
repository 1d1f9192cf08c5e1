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
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// IO is the boundary between a running Instance and the outside world. The
// input and output instructions go through it and nothing else does.
//
// Values travel as text: ReadValue returns the text of the next input value
// (the VM parses it as a signed decimal integer), WriteValue emits one output
// value formatted as a signed decimal integer.
//
// An implementation signals clean termination by returning io.EOF; the VM
// stops and hands io.EOF back to the caller of Run. Any other error is fatal.
type IO interface {
	ReadValue() (string, error)
	WriteValue(value string) error
}

// Console is an interactive IO implementation: ReadValue prompts and blocks
// on a line from the reader, WriteValue prints a line to the writer.
type Console struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewConsole returns a Console reading input lines from r and writing output
// lines to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: bufio.NewWriter(w)}
}

// ReadValue prompts for a value and reads one line. A final line without a
// trailing newline is accepted. Returns io.EOF once the input is exhausted.
func (c *Console) ReadValue() (string, error) {
	if _, err := c.out.WriteString("Input: "); err != nil {
		return "", errors.Wrap(err, "console prompt")
	}
	if err := c.out.Flush(); err != nil {
		return "", errors.Wrap(err, "console prompt")
	}
	s, err := c.in.ReadString('\n')
	if err != nil {
		if s != "" && err == io.EOF {
			return s, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
		return "", errors.Wrap(err, "console read")
	}
	return s, nil
}

// WriteValue prints value on a line of its own.
func (c *Console) WriteValue(value string) error {
	if _, err := c.out.WriteString(value); err != nil {
		return errors.Wrap(err, "console write")
	}
	if err := c.out.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "console write")
	}
	return errors.Wrap(c.out.Flush(), "console write")
}

// Script is a deterministic IO implementation for repeatable runs: ReadValue
// pops the front of a preloaded queue, WriteValue appends to an observable
// log.
type Script struct {
	in  []string
	out []string
}

// NewScript returns a Script preloaded with the given input values in order.
func NewScript(values ...string) *Script {
	return &Script{in: values}
}

// ReadValue pops the next queued input value. An empty queue is a usage bug,
// not a runtime condition, and is reported as a fatal error.
func (s *Script) ReadValue() (string, error) {
	if len(s.in) == 0 {
		return "", errors.New("script: ran out of input")
	}
	v := s.in[0]
	s.in = s.in[1:]
	return v, nil
}

// WriteValue appends value to the output log.
func (s *Script) WriteValue(value string) error {
	s.out = append(s.out, value)
	return nil
}

// Output returns the values written so far, in write order.
func (s *Script) Output() []string {
	return s.out
}

// Pipe is a channel-backed IO implementation coupling a running Instance to a
// peer on another goroutine. ReadValue blocks on the inbound channel,
// WriteValue sends on the outbound channel. Both report io.EOF once the peer
// is gone: a closed inbound channel, or a closed done channel while a read or
// send is blocked. io.EOF stops the VM cleanly, it is the designed
// termination path for coupled runs.
type Pipe struct {
	in   <-chan string
	out  chan<- string
	done <-chan struct{}
}

// NewPipe returns a Pipe reading from in and sending on out. done may be nil;
// if not, the peer closes it to unblock a blocked read or send once it is
// gone.
// The Pipe never closes out itself: the producer side does, once its program
// has halted.
func NewPipe(in <-chan string, out chan<- string, done <-chan struct{}) *Pipe {
	return &Pipe{in: in, out: out, done: done}
}

// ReadValue blocks until a value arrives. There is no timeout.
func (p *Pipe) ReadValue() (string, error) {
	// a nil done channel never fires
	select {
	case v, ok := <-p.in:
		if !ok {
			return "", io.EOF
		}
		return v, nil
	case <-p.done:
		return "", io.EOF
	}
}

// WriteValue sends value to the peer.
func (p *Pipe) WriteValue(value string) error {
	if p.done == nil {
		p.out <- value
		return nil
	}
	select {
	case p.out <- value:
		return nil
	case <-p.done:
		return io.EOF
	}
}
