// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// notes server handlers and the client error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. The client
// maps them back to service errors, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidLoginPassword = "invalid email/password"

	// MsgEmailNotVerified is returned on sign-in of an unverified account
	// when verification is required.
	MsgEmailNotVerified = "email is not verified"

	// MsgEmailAlreadyExists is returned when a sign-up reuses an email.
	MsgEmailAlreadyExists = "email already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned for transient storage failures.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgTokenRevoked is returned for tokens revoked by a logout.
	MsgTokenRevoked = "token was revoked"

	// MsgInvalidOneTimeToken is returned for unknown, used or expired
	// verification and reset tokens.
	MsgInvalidOneTimeToken = "one-time token is invalid or expired"

	// MsgNoteNotFound is returned for missing notes and notes of other users.
	MsgNoteNotFound = "note was not found"

	// MsgNoteAlreadyExists is returned when a created note reuses an ID.
	MsgNoteAlreadyExists = "note already exists"

	// MsgBackupNotFound is returned for unknown or deleted backups.
	MsgBackupNotFound = "backup was not found"

	// MsgAttachmentNotFound is returned for missing storage objects.
	MsgAttachmentNotFound = "attachment was not found"

	// MsgInvalidAttachmentName is returned for bucket or object names that
	// are empty, unknown or escape the bucket.
	MsgInvalidAttachmentName = "invalid attachment name"

	// MsgIntegrityCheckFailed is returned when a body hash does not match.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgVersionIsNotSpecified is returned when the server was started
	// without a build version.
	MsgVersionIsNotSpecified = "version is not specified"
)
