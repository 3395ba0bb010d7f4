package siren

import (
	"bytes"
	"encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/ccbrown/siren-fu/hypermedia"
	"github.com/ccbrown/siren-fu/siren/types"
)

// ReadDocument parses a Siren document. The entire document is parsed and validated before
// anything is interpreted, so member order doesn't matter.
//
// The properties of the returned entities are left as raw JSON.
func ReadDocument(data []byte) (*types.Entity, error) {
	if !jsonConfig.Valid(data) {
		var v any
		err := jsonConfig.Unmarshal(data, &v)
		if err == nil {
			err = errors.New("invalid json")
		}
		return nil, &MalformedDocumentError{
			Expected: "valid json",
			Found:    "invalid json",
			Cause:    errors.Wrap(err, "unable to parse document"),
		}
	}
	return readEntity("", data)
}

// valueKind returns the kind of JSON value that raw holds. The value is assumed to be valid.
func valueKind(raw []byte) string {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return "object"
		case '[':
			return "array"
		case '"':
			return "string"
		case 't', 'f':
			return "boolean"
		case 'n':
			return "null"
		}
		return "number"
	}
	return "nothing"
}

func expectKind(path string, raw []byte, expected string) error {
	if kind := valueKind(raw); kind != expected {
		return &MalformedDocumentError{
			Field:    path,
			Found:    kind,
			Expected: expected,
		}
	}
	return nil
}

func readMembers(path string, raw []byte) (map[string]jsoniter.RawMessage, error) {
	if err := expectKind(path, raw, "object"); err != nil {
		return nil, err
	}
	var members map[string]jsoniter.RawMessage
	if err := jsonConfig.Unmarshal(raw, &members); err != nil {
		return nil, errors.Wrapf(err, "unable to read %v", describeField(path))
	}
	for name, member := range members {
		members[name] = normalizeRaw(member)
	}
	return members, nil
}

var rawNull = jsoniter.RawMessage("null")

// normalizeRaw trims whitespace around a present value. jsoniter decodes a null member into an
// empty RawMessage, so empty values are turned back into null to keep them apart from missing
// members.
func normalizeRaw(raw []byte) jsoniter.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return rawNull
	}
	return raw
}

func readArray(path string, raw []byte, f func(path string, raw []byte) error) error {
	if raw == nil || valueKind(raw) == "null" {
		return nil
	}
	if err := expectKind(path, raw, "array"); err != nil {
		return err
	}
	var items []jsoniter.RawMessage
	if err := jsonConfig.Unmarshal(raw, &items); err != nil {
		return errors.Wrapf(err, "unable to read %v", path)
	}
	for i, item := range items {
		if err := f(indexPath(path, i), normalizeRaw(item)); err != nil {
			return err
		}
	}
	return nil
}

func readString(path string, raw []byte, required bool) (string, error) {
	if kind := valueKind(raw); kind == "nothing" || kind == "null" {
		if required {
			return "", &MalformedDocumentError{
				Field:    path,
				Found:    kind,
				Expected: "string",
			}
		}
		return "", nil
	}
	if err := expectKind(path, raw, "string"); err != nil {
		return "", err
	}
	var s string
	if err := jsonConfig.Unmarshal(raw, &s); err != nil {
		return "", errors.Wrapf(err, "unable to read %v", path)
	}
	return s, nil
}

func readStrings(path string, raw []byte) ([]string, error) {
	var ret []string
	err := readArray(path, raw, func(path string, raw []byte) error {
		s, err := readString(path, raw, true)
		ret = append(ret, s)
		return err
	})
	return ret, err
}

func readEntity(path string, raw []byte) (*types.Entity, error) {
	members, err := readMembers(path, raw)
	if err != nil {
		return nil, err
	}

	ret := &types.Entity{}

	if ret.Class, err = readStrings(memberPath(path, "class"), members["class"]); err != nil {
		return nil, err
	}

	if ret.Rel, err = readStrings(memberPath(path, "rel"), members["rel"]); err != nil {
		return nil, err
	}

	if properties, ok := members["properties"]; ok && valueKind(properties) != "null" {
		ret.Properties = jsoniter.RawMessage(append([]byte(nil), properties...))
	}

	if err := readArray(memberPath(path, "entities"), members["entities"], func(path string, raw []byte) error {
		entity, err := readEntity(path, raw)
		if err == nil {
			ret.Entities = append(ret.Entities, *entity)
		}
		return err
	}); err != nil {
		return nil, err
	}

	if err := readArray(memberPath(path, "links"), members["links"], func(path string, raw []byte) error {
		link, err := readLink(path, raw)
		if err == nil {
			ret.Links = append(ret.Links, *link)
		}
		return err
	}); err != nil {
		return nil, err
	}

	if err := readArray(memberPath(path, "actions"), members["actions"], func(path string, raw []byte) error {
		action, err := readAction(path, raw)
		if err == nil {
			ret.Actions = append(ret.Actions, *action)
		}
		return err
	}); err != nil {
		return nil, err
	}

	if ret.Title, err = readString(memberPath(path, "title"), members["title"], false); err != nil {
		return nil, err
	}

	return ret, nil
}

func readLink(path string, raw []byte) (*types.Link, error) {
	members, err := readMembers(path, raw)
	if err != nil {
		return nil, err
	}

	ret := &types.Link{}

	relPath := memberPath(path, "rel")
	if ret.Rel, err = readStrings(relPath, members["rel"]); err != nil {
		return nil, err
	} else if len(ret.Rel) == 0 {
		found := valueKind(members["rel"])
		if found == "array" {
			found = "empty array"
		}
		return nil, &MalformedDocumentError{
			Field:    relPath,
			Found:    found,
			Expected: "non-empty array of strings",
		}
	}

	if ret.Class, err = readStrings(memberPath(path, "class"), members["class"]); err != nil {
		return nil, err
	}

	if ret.Href, err = readString(memberPath(path, "href"), members["href"], true); err != nil {
		return nil, err
	}

	if ret.Title, err = readString(memberPath(path, "title"), members["title"], false); err != nil {
		return nil, err
	}

	if ret.Type, err = readString(memberPath(path, "type"), members["type"], false); err != nil {
		return nil, err
	}

	return ret, nil
}

func readAction(path string, raw []byte) (*types.Action, error) {
	members, err := readMembers(path, raw)
	if err != nil {
		return nil, err
	}

	ret := &types.Action{}

	if ret.Name, err = readString(memberPath(path, "name"), members["name"], true); err != nil {
		return nil, err
	}

	if ret.Class, err = readStrings(memberPath(path, "class"), members["class"]); err != nil {
		return nil, err
	}

	if ret.Method, err = readString(memberPath(path, "method"), members["method"], false); err != nil {
		return nil, err
	}

	if ret.Href, err = readString(memberPath(path, "href"), members["href"], true); err != nil {
		return nil, err
	}

	if ret.Title, err = readString(memberPath(path, "title"), members["title"], false); err != nil {
		return nil, err
	}

	if ret.Type, err = readString(memberPath(path, "type"), members["type"], false); err != nil {
		return nil, err
	}

	if err := readArray(memberPath(path, "fields"), members["fields"], func(path string, raw []byte) error {
		field, err := readField(path, raw)
		if err == nil {
			ret.Fields = append(ret.Fields, *field)
		}
		return err
	}); err != nil {
		return nil, err
	}

	return ret, nil
}

func readField(path string, raw []byte) (*types.Field, error) {
	members, err := readMembers(path, raw)
	if err != nil {
		return nil, err
	}

	ret := &types.Field{}

	if ret.Name, err = readString(memberPath(path, "name"), members["name"], true); err != nil {
		return nil, err
	}

	if ret.Class, err = readStrings(memberPath(path, "class"), members["class"]); err != nil {
		return nil, err
	}

	if ret.Type, err = readString(memberPath(path, "type"), members["type"], false); err != nil {
		return nil, err
	}

	if value, ok := members["value"]; ok {
		if ret.Value, err = hypermedia.ParseValue(value); err != nil {
			return nil, errors.Wrapf(err, "unable to read %v", memberPath(path, "value"))
		}
	}

	if ret.Title, err = readString(memberPath(path, "title"), members["title"], false); err != nil {
		return nil, err
	}

	return ret, nil
}

// rawProperties returns the JSON representation of the entity's properties. Entities produced
// by ReadDocument already hold raw JSON. Others are marshaled.
func rawProperties(entity *types.Entity) ([]byte, error) {
	switch p := entity.Properties.(type) {
	case nil:
		return nil, nil
	case jsoniter.RawMessage:
		if len(p) == 0 {
			return nil, nil
		}
		return p, nil
	case json.RawMessage:
		if len(p) == 0 {
			return nil, nil
		}
		return p, nil
	}
	buf, err := jsonConfig.Marshal(entity.Properties)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal properties")
	}
	return buf, nil
}

type rawProperty struct {
	Name string
	Raw  []byte
}

// readProperties reads the members of an object, in order.
func readProperties(path string, raw []byte) ([]rawProperty, error) {
	switch kind := valueKind(raw); kind {
	case "nothing", "null":
		return nil, nil
	case "object":
	default:
		return nil, &MalformedDocumentError{
			Field:    path,
			Found:    kind,
			Expected: "object",
		}
	}

	var ret []rawProperty
	iter := jsonConfig.BorrowIterator(raw)
	defer jsonConfig.ReturnIterator(iter)
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		ret = append(ret, rawProperty{
			Name: key,
			Raw:  append([]byte(nil), normalizeRaw(iter.SkipAndReturnBytes())...),
		})
		return true
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, errors.Wrapf(iter.Error, "unable to read %v", path)
	}
	return ret, nil
}
