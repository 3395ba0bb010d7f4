// Package catalog provides message catalogs, which are used to look up human-readable titles for
// entities, links, actions, and fields.
package catalog

import (
	"errors"
)

// ErrNoSuchMessage is returned by catalogs that don't have a message for any of the requested
// codes.
var ErrNoSuchMessage = errors.New("no such message")

// Catalog is a source of messages.
type Catalog interface {
	// Message returns the message for the first of the given codes that the catalog can resolve.
	// If none can be resolved, ErrNoSuchMessage is returned.
	Message(codes []string) (string, error)
}

// Map is a catalog backed by a map from codes to messages.
type Map map[string]string

func (m Map) Message(codes []string) (string, error) {
	for _, code := range codes {
		if msg, ok := m[code]; ok {
			return msg, nil
		}
	}
	return "", ErrNoSuchMessage
}

// Chain is a catalog that consults each of its catalogs in order.
//
// Note that codes take priority over catalogs: a message for the first code in a later catalog
// wins over a message for the second code in an earlier catalog.
type Chain []Catalog

func (c Chain) Message(codes []string) (string, error) {
	for _, code := range codes {
		for _, catalog := range c {
			if catalog == nil {
				continue
			}
			msg, err := catalog.Message([]string{code})
			if err == nil {
				return msg, nil
			} else if !errors.Is(err, ErrNoSuchMessage) {
				return "", err
			}
		}
	}
	return "", ErrNoSuchMessage
}

// Func adapts a function to the Catalog interface.
type Func func(codes []string) (string, error)

func (f Func) Message(codes []string) (string, error) {
	return f(codes)
}
