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

// Package vm implements the Intcode VM.
//
// Intcode is a small register-machine: a mutable memory tape of signed
// integers, a program counter, three parameter addressing modes (position,
// immediate and relative to a movable base), memory that grows on demand, and
// exactly two instructions that touch the outside world (input and output).
//
// The outside world is abstracted behind the IO interface, so the same
// program can be driven interactively (Console), from a canned list of values
// for repeatable runs (Script), or over channels by a peer running on another
// goroutine (Pipe). The robot package demonstrates the latter: an instance
// and its tracker peer exchanging a strictly alternating conversation.
//
// Programs decode fresh from memory every cycle, so self-modifying code works
// as expected. Reads past the end of the tape return 0 without growing it;
// writes grow it zero-filled. There is no instruction limit: a program that
// does not halt keeps the VM running, which matches the intended inputs.
package vm
