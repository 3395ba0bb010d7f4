// Package sirenfu converts hypermedia resources to and from Siren documents.
//
// Resources are described using the hypermedia package, and documents using the siren/types
// package. Most applications only need a Codec:
//
//	codec, err := sirenfu.NewCodec(&sirenfu.Config{})
//	...
//	body, err := codec.Encode(hypermedia.NewObject(person, hypermedia.NewLink("/people/1", "self")))
//	...
//	resource, err := codec.Decode(body, siren.PlainOf[Person]())
package sirenfu

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/siren-fu/catalog"
	"github.com/ccbrown/siren-fu/hypermedia"
	"github.com/ccbrown/siren-fu/siren"
	"github.com/ccbrown/siren-fu/siren/types"
)

// MediaType is the media type of Siren documents.
const MediaType = siren.MediaType

// Codec encodes and decodes Siren documents. It is safe for concurrent use as long as the
// strategies it's configured with are.
type Codec struct {
	strategies siren.Strategies
	encoder    *siren.Encoder
	decoder    *siren.Decoder
	logger     logrus.FieldLogger
}

// NewCodec creates a codec with the given configuration.
func NewCodec(cfg *Config) (*Codec, error) {
	strategies, err := cfg.strategies()
	if err != nil {
		return nil, errors.Wrap(err, "error building strategies")
	}
	ret := newCodec(strategies)
	ret.encoder.Indent = cfg.Indent
	return ret, nil
}

func newCodec(strategies siren.Strategies) *Codec {
	return &Codec{
		strategies: strategies,
		encoder:    siren.NewEncoder(strategies),
		decoder:    siren.NewDecoder(strategies),
		logger:     strategies.Logger,
	}
}

// WithCatalog returns a copy of the codec that uses the given catalog for titles. This is
// typically used with catalog.Bundle to localize documents per request:
//
//	codec.WithCatalog(bundle.For(r.Header.Get("Accept-Language"))).Encode(resource)
func (c *Codec) WithCatalog(messages catalog.Catalog) *Codec {
	strategies := c.strategies
	strategies.Catalog = messages
	ret := newCodec(strategies)
	ret.encoder.Indent = c.encoder.Indent
	return ret
}

// ContentType returns the media type of the codec's output.
func (c *Codec) ContentType() string {
	return MediaType
}

// Encode converts a resource to a serialized Siren document.
func (c *Codec) Encode(resource *hypermedia.Resource) ([]byte, error) {
	ret, err := c.encoder.Encode(resource)
	if err != nil {
		c.logger.WithError(err).Debug("unable to encode resource")
	}
	return ret, err
}

// EncodeDocument converts a resource to a Siren document without serializing it.
func (c *Codec) EncodeDocument(resource *hypermedia.Resource) (*types.Entity, error) {
	return c.encoder.EncodeDocument(resource)
}

// Decode parses a Siren document and converts it to a resource of the given shape.
func (c *Codec) Decode(data []byte, shape siren.Shape) (*hypermedia.Resource, error) {
	ret, err := c.decoder.Decode(data, shape)
	if err != nil {
		c.logger.WithError(err).WithField("shape", shape.Kind.String()).Debug("unable to decode document")
	}
	return ret, err
}

// DecodeDocument converts a Siren document to a resource of the given shape.
func (c *Codec) DecodeDocument(doc *types.Entity, shape siren.Shape) (*hypermedia.Resource, error) {
	return c.decoder.DecodeDocument(doc, shape)
}
