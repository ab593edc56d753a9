package services

import "errors"

var (
	// ErrInvalidState indicates the system cannot produce candidates in its
	// current state (empty POI catalog, or nothing left even after fallback).
	ErrInvalidState = errors.New("invalid state")

	// ErrUnknownMode indicates a travel mode outside the closed enumeration.
	// Unreachable through validated request paths; treated as a programming
	// error, never shown to users.
	ErrUnknownMode = errors.New("unknown travel mode")
)
