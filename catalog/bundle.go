package catalog

import (
	"golang.org/x/text/language"
)

// Bundle holds catalogs for multiple languages.
//
// Catalogs must be added before the bundle is used concurrently.
type Bundle struct {
	tags     []language.Tag
	catalogs []Catalog
	matcher  language.Matcher
}

// NewBundle creates a bundle whose fallback catalog is used for messages that a more specific
// catalog doesn't have, and for languages that no catalog matches.
func NewBundle(fallbackLanguage language.Tag, fallback Catalog) *Bundle {
	ret := &Bundle{}
	ret.Add(fallbackLanguage, fallback)
	return ret
}

// Add adds a catalog for the given language.
func (b *Bundle) Add(tag language.Tag, c Catalog) {
	b.tags = append(b.tags, tag)
	b.catalogs = append(b.catalogs, c)
	b.matcher = language.NewMatcher(b.tags)
}

// For returns a catalog for the best match of the given languages, which may be given as tags or
// as Accept-Language header values. The returned catalog falls back to the bundle's fallback
// catalog.
func (b *Bundle) For(preferences ...string) Catalog {
	var desired []language.Tag
	for _, pref := range preferences {
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}

	_, index, confidence := b.matcher.Match(desired...)
	if confidence == language.No || index == 0 {
		return b.catalogs[0]
	}
	return Chain{b.catalogs[index], b.catalogs[0]}
}
