// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package redact

import (
	"sync"
	"sync/atomic"
)

// Redacted is the placeholder written in place of every sensitive value.
const Redacted = "[REDACTED]"

// defaultSensitiveKeys is the built-in list of field names that must never
// appear in logs or serialized API responses.
var defaultSensitiveKeys = []string{
	"password",
	"password_hash",
	"hashed_password",
	"passwordHash",
	"hashedPassword",
	"secret",
	"secret_key",
	"secretKey",
	"apiKey",
	"api_key",
	"accessToken",
	"access_token",
	"refreshToken",
	"refresh_token",
	"token",
	"jwt",
	"privateKey",
	"private_key",
	"creditCard",
	"credit_card",
	"cardNumber",
	"card_number",
	"cvv",
	"ssn",
	"socialSecurityNumber",
	"otp",
	"pin",
	"smtpPassword",
	"smtp_password",
}

// DefaultKeys returns a copy of the built-in sensitive key list.
func DefaultKeys() []string {
	keys := make([]string, len(defaultSensitiveKeys))
	copy(keys, defaultSensitiveKeys)
	return keys
}

// keys is an immutable snapshot of the set. A published snapshot is never
// modified; writers publish a new one.
type keys map[string]struct{}

// KeySet is an append-only set of sensitive key names.
//
// Reads are lock-free: IsSensitive and Censor load the current snapshot
// through an atomic pointer. Register copies the snapshot, adds the new keys
// and publishes the copy, so concurrent readers observe either the old or the
// new set, never a partially written one.
type KeySet struct {
	current atomic.Pointer[keys]

	// mu serializes writers only.
	mu sync.Mutex
}

// NewKeySet returns a set holding exactly the given keys.
func NewKeySet(names ...string) *KeySet {
	s := &KeySet{}
	snapshot := make(keys, len(names))
	for _, name := range names {
		snapshot[name] = struct{}{}
	}
	s.current.Store(&snapshot)
	return s
}

// DefaultKeySet returns a set seeded with the built-in sensitive keys.
func DefaultKeySet() *KeySet {
	return NewKeySet(defaultSensitiveKeys...)
}

// IsSensitive reports whether key is in the set. The comparison is exact and
// case-sensitive.
func (s *KeySet) IsSensitive(key string) bool {
	_, ok := (*s.load())[key]
	return ok
}

// Register adds names to the set. Adding a name that is already present is a
// no-op; names are never removed.
func (s *KeySet) Register(names ...string) {
	if len(names) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old := *s.load()
	next := make(keys, len(old)+len(names))
	for name := range old {
		next[name] = struct{}{}
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		next[name] = struct{}{}
	}
	s.current.Store(&next)
}

// With returns a new, independent set holding the receiver's keys plus
// names. The receiver is left unchanged.
func (s *KeySet) With(names ...string) *KeySet {
	old := *s.load()
	merged := make([]string, 0, len(old)+len(names))
	for name := range old {
		merged = append(merged, name)
	}
	for _, name := range names {
		if name != "" {
			merged = append(merged, name)
		}
	}
	return NewKeySet(merged...)
}

// Len returns the number of keys in the set.
func (s *KeySet) Len() int {
	return len(*s.load())
}

func (s *KeySet) load() *keys {
	if p := s.current.Load(); p != nil {
		return p
	}
	empty := keys{}
	return &empty
}
