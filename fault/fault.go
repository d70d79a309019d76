// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyClaim                   = ExistsError("already claim")
	AlreadyInitialised             = ExistsError("already initialised")
	CannotDecodeAccount            = RecordError("cannot decode account")
	CannotDecodePrivateKey         = RecordError("cannot decode private key")
	CertificateFileAlreadyExists   = ExistsError("certificate file already exists")
	CertificateFingerprintMismatch = InvalidError("certificate fingerprint mismatch")
	ChecksumMismatch               = ProcessError("checksum mismatch")
	CorruptRecord                  = RecordError("corrupt record")
	InsufficientFunds              = ProcessError("insufficient funds")
	InvalidAmount                  = InvalidError("invalid amount")
	InvalidChain                   = InvalidError("invalid chain")
	InvalidCount                   = InvalidError("invalid count")
	InvalidCursor                  = InvalidError("invalid cursor")
	InvalidIpAddress               = InvalidError("invalid IP address")
	InvalidKeyLength               = InvalidError("invalid key length")
	InvalidKeyType                 = InvalidError("invalid key type")
	InvalidPortNumber              = InvalidError("invalid port number")
	InvalidPrice                   = InvalidError("invalid price")
	InvalidRoundIndex              = InvalidError("invalid round index")
	InvalidSignature               = InvalidError("invalid signature")
	InvalidStructPointer           = InvalidError("invalid struct pointer")
	InvalidTimestamp               = InvalidError("invalid timestamp")
	InvalidTransition              = InvalidError("invalid transition")
	KeyFileAlreadyExists           = ExistsError("key file already exists")
	MaxFeeError                    = InvalidError("fee is over the max fee")
	MissingParameters              = InvalidError("missing parameters")
	NotACertificate                = InvalidError("not a certificate")
	NotAPrivateKey                 = InvalidError("not a private key")
	NotAPublicKey                  = InvalidError("not a public key")
	NotAllowedOwner                = PermissionError("not allowed owner")
	NotAvailableInLiveChain        = ProcessError("not available in live chain")
	NotInitialised                 = NotFoundError("not initialised")
	OverMaxSlot                    = InvalidError("over max slot count")
	RateLimiting                   = InvalidError("rate limiting")
	ReadOnlyDatabase               = ProcessError("database is read only")
	RecordTruncated                = LengthError("record is truncated")
	RequestAlreadyUsed             = InvalidError("request already used")
	TransactionAlreadyInUse        = ProcessError("transaction already in use")
	TransactionClosed              = ProcessError("transaction is closed")
	UnexpectedRecordType           = RecordError("unexpected record type")
	UninitializedAccount           = NotFoundError("the account is not initialized")
	ValueOverflow                  = InvalidError("value overflow")
	WrongNetworkForPublicKey       = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
