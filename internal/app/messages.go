// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-auth-keeper server handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgUserRegistered is returned in the body of a successful registration
	// response, alongside the issued session token.
	MsgUserRegistered = "user registered successfully"

	// MsgLoginSuccessful is returned in the body of a successful login
	// response, alongside the issued session token.
	MsgLoginSuccessful = "login successful"

	// MsgUserUpdated is returned when a profile update is persisted,
	// alongside the updated user record.
	MsgUserUpdated = "user updated successfully"

	// MsgUserDeleted is returned when an account is removed. The session
	// token that authorised the deletion stops resolving at that moment.
	MsgUserDeleted = "user deleted successfully"

	// MsgStatusOK is the status value reported by the health endpoint.
	MsgStatusOK = "ok"
)
