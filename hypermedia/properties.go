package hypermedia

import (
	"io"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

// Property is a key-value pair of a Properties map.
type Property struct {
	Key   string
	Value any
}

// Properties is a map that maintains the order of its key-value pairs. It serializes to a JSON
// object with its keys in insertion order.
//
// Properties implements WritableModel, accepting every property it's given, so it can be used
// for resources that don't have a more specific model.
type Properties struct {
	items []Property
}

// NewProperties creates a new, empty properties map.
func NewProperties() *Properties {
	return &Properties{}
}

// NewPropertiesWithCapacity creates a new, empty properties map with room for n items.
func NewPropertiesWithCapacity(n int) *Properties {
	return &Properties{
		items: make([]Property, 0, n),
	}
}

// Append appends a key-value pair to the map. It is the caller's responsibility to make sure the
// key doesn't already exist in the map.
func (p *Properties) Append(key string, value any) {
	p.items = append(p.items, Property{
		Key:   key,
		Value: value,
	})
}

// Set replaces the value for the given key, or appends it if the key doesn't exist yet. It
// returns the receiver so that calls can be chained.
func (p *Properties) Set(key string, value any) *Properties {
	for i := range p.items {
		if p.items[i].Key == key {
			p.items[i].Value = value
			return p
		}
	}
	p.Append(key, value)
	return p
}

// Get returns the value for the given key.
func (p *Properties) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	for _, item := range p.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

// Len returns the length of the map.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

// Items provides the items in the map, in the order they were added.
func (p *Properties) Items() []Property {
	if p == nil {
		return nil
	}
	return p.items
}

// Without returns a copy of the map without the given keys.
func (p *Properties) Without(keys ...string) *Properties {
	ret := NewPropertiesWithCapacity(p.Len())
	for _, item := range p.Items() {
		excluded := false
		for _, k := range keys {
			if item.Key == k {
				excluded = true
				break
			}
		}
		if !excluded {
			ret.items = append(ret.items, item)
		}
	}
	return ret
}

func (p *Properties) Properties() *Properties {
	return p
}

func (p *Properties) SetProperty(name string, raw []byte) (bool, error) {
	v, err := ParseValue(raw)
	if err != nil {
		return true, errors.Wrapf(err, "unable to set property %v", name)
	}
	p.Set(name, v)
	return true, nil
}

func (p *Properties) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(p)
}

func (p *Properties) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(p.Len()); err != nil {
		return err
	}
	for _, item := range p.Items() {
		if err := enc.EncodeString(item.Key); err != nil {
			return err
		}
		if err := enc.Encode(item.Value); err != nil {
			return err
		}
	}
	return nil
}

type propertiesEncoder struct{}

func (e *propertiesEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	p := *((*Properties)(ptr))
	return p.Len() == 0
}

func (e *propertiesEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	p := *((*Properties)(ptr))
	stream.WriteObjectStart()
	for i, kv := range p.items {
		if i != 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(kv.Key)
		stream.WriteVal(kv.Value)
	}
	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("hypermedia.Properties", &propertiesEncoder{})
}

// ParseValue parses a JSON value, preserving the member order of objects. Objects are returned
// as *Properties, arrays as []any, and numbers as int64 if they're integral or float64
// otherwise.
func ParseValue(raw []byte) (any, error) {
	iter := jsoniter.ConfigDefault.BorrowIterator(raw)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)
	ret := readValue(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, errors.Wrap(iter.Error, "unable to parse value")
	}
	return ret, nil
}

func readValue(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		ret := NewProperties()
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			ret.Set(key, readValue(iter))
			return iter.Error == nil
		})
		return ret
	case jsoniter.ArrayValue:
		ret := []any{}
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			ret = append(ret, readValue(iter))
			return iter.Error == nil
		})
		return ret
	case jsoniter.NumberValue:
		n := iter.ReadNumber()
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, err := n.Float64()
		if err != nil {
			iter.ReportError("ParseValue", "invalid number")
		}
		return f
	case jsoniter.StringValue:
		return iter.ReadString()
	case jsoniter.BoolValue:
		return iter.ReadBool()
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil
	}
	iter.ReportError("ParseValue", "expected a value")
	return nil
}
