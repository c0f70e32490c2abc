package domain

import (
	"fmt"
	"strings"
)

type PoolName string

const (
	PoolGeneration PoolName = "generation"
	PoolSearch     PoolName = "search"
)

// KeyPool is a named, ordered list of interchangeable credentials.
type KeyPool struct {
	Name PoolName
	Keys []string
}

func (p KeyPool) Validate() error {
	if strings.TrimSpace(string(p.Name)) == "" {
		return fmt.Errorf("pool name is required")
	}
	if len(p.Keys) == 0 {
		return &ConfigurationError{Pool: p.Name, Reason: "no credentials configured"}
	}

	return nil
}

func (p KeyPool) Len() int {
	return len(p.Keys)
}

// Select returns the credential at cursor mod len(Keys).
func (p KeyPool) Select(cursor uint64) (string, error) {
	if len(p.Keys) == 0 {
		return "", &ConfigurationError{Pool: p.Name, Reason: "no credentials configured"}
	}

	return p.Keys[cursor%uint64(len(p.Keys))], nil
}

// NormalizeKeys trims entries and drops blanks. Order and repeated keys are
// kept: a key listed twice is drawn twice per cycle.
func (p *KeyPool) NormalizeKeys() {
	if p == nil {
		return
	}

	keys := make([]string, 0, len(p.Keys))
	for _, key := range p.Keys {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		keys = append(keys, trimmed)
	}

	p.Keys = keys
}

// MaskKey hides all but the last four characters of a credential.
func MaskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}

	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
