// Package domain contains the core value types of the scrollback system:
// buffer lines, their event variants, and participant identities.
// Everything here is an immutable value once constructed; no runtime,
// network, or UI logic should be added here.
package domain

// NetID uniquely identifies a network.
type NetID string

// BufID uniquely identifies a buffer within its container.
type BufID string

// Nick is an IRC nickname.
type Nick string
