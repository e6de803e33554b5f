package home

import (
	"math/rand/v2"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource hands out identifiers for new profiles.
type IDSource interface {
	NewID() string
}

// UUIDSource generates random v4 UUIDs.
type UUIDSource struct{}

func (UUIDSource) NewID() string { return uuid.NewString() }

// CounterSource yields Prefix+1, Prefix+2, ... and is meant for tests.
type CounterSource struct {
	Prefix string
	n      atomic.Int64
}

func (c *CounterSource) NewID() string {
	return c.Prefix + strconv.FormatInt(c.n.Add(1), 10)
}

const shortIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ShortSource generates 7 character base36 ids.
type ShortSource struct{}

func (ShortSource) NewID() string {
	b := make([]byte, 7)
	for i := range b {
		b[i] = shortIDAlphabet[rand.IntN(len(shortIDAlphabet))]
	}
	return string(b)
}

// SourceByName maps a config value to an IDSource. Unknown names fall back
// to UUIDs.
func SourceByName(name string) IDSource {
	switch name {
	case "short":
		return ShortSource{}
	case "counter":
		return &CounterSource{Prefix: "p"}
	default:
		return UUIDSource{}
	}
}
