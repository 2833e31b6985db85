// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package mongostore

import (
	"reflect"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var tString = reflect.TypeOf("")

// scalarStringDecoder decodes numeric, boolean and date values into string
// fields using their text form. Collections loaded by external tools such
// as mongoimport store depths and counts as numbers. Other types fall back
// to the default string decoder.
type scalarStringDecoder struct {
	fallback bsoncodec.ValueDecoder
}

func (d scalarStringDecoder) DecodeValue(dc bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Kind() != reflect.String {
		return bsoncodec.ValueDecoderError{Name: "scalarStringDecoder", Kinds: []reflect.Kind{reflect.String}, Received: val}
	}

	var text string
	switch vr.Type() {
	case bsontype.Int32:
		i, err := vr.ReadInt32()
		if err != nil {
			return err
		}
		text = strconv.FormatInt(int64(i), 10)
	case bsontype.Int64:
		i, err := vr.ReadInt64()
		if err != nil {
			return err
		}
		text = strconv.FormatInt(i, 10)
	case bsontype.Double:
		f, err := vr.ReadDouble()
		if err != nil {
			return err
		}
		text = strconv.FormatFloat(f, 'f', -1, 64)
	case bsontype.Decimal128:
		dec, err := vr.ReadDecimal128()
		if err != nil {
			return err
		}
		text = dec.String()
	case bsontype.Boolean:
		b, err := vr.ReadBoolean()
		if err != nil {
			return err
		}
		text = strconv.FormatBool(b)
	case bsontype.DateTime:
		ms, err := vr.ReadDateTime()
		if err != nil {
			return err
		}
		text = time.UnixMilli(ms).UTC().Format(time.RFC3339)
	default:
		return d.fallback.DecodeValue(dc, vr, val)
	}

	val.SetString(text)
	return nil
}

// newRegistry returns the default registry with scalarStringDecoder
// installed for strings. Pointer fields (*string) resolve their element
// decoder through the registry, so optional occurrence fields are covered.
func newRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	fallback, err := reg.LookupDecoder(tString)
	if err != nil {
		panic("mongostore: default registry has no string decoder: " + err.Error())
	}
	reg.RegisterTypeDecoder(tString, scalarStringDecoder{fallback: fallback})
	return reg
}

// scalarString returns the text form of a decoded scalar. ok is false for
// values with no sensible text form (documents, arrays, binary).
func scalarString(v interface{}) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}
