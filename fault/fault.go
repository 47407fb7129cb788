// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AccessDeniedError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised         = ExistsError("already initialised")
	CertificateFileExists      = ExistsError("certificate file exists")
	DatabaseIsNotSet           = InvalidError("database is not set")
	InvalidAccount             = InvalidError("invalid account")
	InvalidAccountChecksum     = InvalidError("invalid account checksum")
	InvalidApprovalTarget      = InvalidError("invalid approval target")
	InvalidCount               = InvalidError("invalid count")
	InvalidCursor              = InvalidError("invalid cursor")
	InvalidIpAddress           = InvalidError("invalid IP Address")
	InvalidKeyLength           = InvalidError("invalid key length")
	InvalidKeyType             = InvalidError("invalid key type")
	InvalidLoggerChannel       = InvalidError("invalid logger channel")
	InvalidMetadata            = InvalidError("invalid metadata")
	InvalidSignature           = InvalidError("invalid signature")
	InvalidStructPointer       = InvalidError("invalid struct pointer")
	KeyFileExists              = ExistsError("key file exists")
	MissingParameters          = InvalidError("missing parameters")
	NotAvailableDuringShutdown = ProcessError("not available during shutdown")
	NotInitialised             = ProcessError("not initialised")
	NotOperatorOrOwner         = AccessDeniedError("not operator or owner")
	NotPublicKey               = InvalidError("not public key")
	NotTransferable            = AccessDeniedError("not transferable")
	RateLimiting               = ProcessError("rate limiting")
	RecipientRejected          = ProcessError("recipient rejected")
	TokenAlreadyExists         = ExistsError("token already exists")
	TokenDoesNotExist          = NotFoundError("token does not exist")
	TransactionAlreadyInUse    = ProcessError("transaction already in use")
	WrongNetworkForAccount     = InvalidError("wrong network for account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessDeniedError) Error() string { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// IsErrAccessDenied - determine if access denied class of error
func IsErrAccessDenied(e error) bool { _, ok := e.(AccessDeniedError); return ok }

// IsErrExists - determine if exists class of error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if invalid class of error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if not found class of error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if process class of error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
