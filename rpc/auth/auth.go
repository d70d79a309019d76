// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - signed requests for state changing RPC calls
//
// the signed message is:
//   method name ++ each numeric argument ++ timestamp
// with every item packed as length prefixed bytes or varint
//
// the timestamp is in nanoseconds and doubles as the request sequence,
// so each caller's requests must be signed in increasing time order
package auth

import (
	"time"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/util"
)

// MaximumSkew - allowed difference between request time and server time
const MaximumSkew = 5 * time.Minute

// Request - identity and proof carried by a signed call
type Request struct {
	Caller    *account.Account  `json:"caller"`
	Timestamp int64             `json:"timestamp,string"` // unix nanoseconds
	Signature account.Signature `json:"signature"`
}

// Message - the bytes that are signed for a call
func Message(method string, timestamp int64, fields ...uint64) []byte {
	packed := util.Packed{}.AppendBytes([]byte(method))
	for _, f := range fields {
		packed = packed.AppendUint64(f)
	}
	return packed.AppendUint64(uint64(timestamp))
}

// Sign - fill in a request for a call at the given time
func (r *Request) Sign(key *account.PrivateKey, method string, timestamp time.Time, fields ...uint64) {
	r.Caller = key.Account()
	r.Timestamp = timestamp.UnixNano()
	r.Signature = key.Sign(Message(method, r.Timestamp, fields...))
}

// Verify - check the caller signed this call recently
func (r *Request) Verify(method string, now time.Time, fields ...uint64) error {
	if nil == r.Caller || nil == r.Caller.AccountInterface || 0 == len(r.Signature) {
		return fault.MissingParameters
	}

	skew := now.Sub(time.Unix(0, r.Timestamp))
	if skew > MaximumSkew || skew < -MaximumSkew {
		return fault.InvalidTimestamp
	}

	return r.Caller.CheckSignature(Message(method, r.Timestamp, fields...), r.Signature)
}

// Sequence - the value the sale uses to accept each request only once
//
// only meaningful after Verify has accepted the timestamp
func (r *Request) Sequence() uint64 {
	if r.Timestamp <= 0 {
		return 0
	}
	return uint64(r.Timestamp)
}
