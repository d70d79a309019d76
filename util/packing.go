// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/slotd/fault"
)

// Packed - a byte buffer that record fields are appended to
type Packed []byte

// AppendUint64 - add a varint field
func (p Packed) AppendUint64(value uint64) Packed {
	return append(p, ToVarint64(value)...)
}

// AppendBytes - add a length prefixed byte field
func (p Packed) AppendBytes(data []byte) Packed {
	p = append(p, ToVarint64(uint64(len(data)))...)
	return append(p, data...)
}

// Unpacker - sequential reader for a Packed buffer
//
// the first error is sticky: later reads return zero values
// and Err reports the original failure
type Unpacker struct {
	buffer []byte
	n      int
	err    error
}

// NewUnpacker - start reading a buffer from its first byte
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// Uint64 - read the next varint field
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = fault.RecordTruncated
		return 0
	}
	u.n += count
	return value
}

// Bytes - read the next length prefixed field
//
// the returned slice is a copy
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if uint64(len(u.buffer)-u.n) < length {
		u.err = fault.RecordTruncated
		return nil
	}
	data := make([]byte, length)
	copy(data, u.buffer[u.n:u.n+int(length)])
	u.n += int(length)
	return data
}

// Err - first error encountered
func (u *Unpacker) Err() error {
	return u.err
}

// Remaining - count of bytes not yet read
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.n
}
