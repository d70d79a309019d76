// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/storage"
)

// sequenceLock - exclusive lock on the newest request of a caller
func sequenceLock(caller *account.Account) storage.LockRequest {
	return storage.Pool.Sequences.Exclusive(caller.Bytes())
}

// newest request sequence accepted from a caller, zero if none
func lastSequence(r storage.Reader, caller *account.Account) uint64 {
	value, _ := r.GetN(storage.Pool.Sequences, caller.Bytes())
	return value
}

// accept a signed request at most once
//
// the sequence must be newer than every earlier request from the same
// caller; it is stored by the transaction of the operation it
// authorises, so a failed operation does not use it up
func accept(trx storage.Transaction, caller *account.Account, sequence uint64) error {
	if sequence <= lastSequence(trx, caller) {
		return fault.RequestAlreadyUsed
	}
	trx.PutN(storage.Pool.Sequences, caller.Bytes(), sequence)
	return nil
}
