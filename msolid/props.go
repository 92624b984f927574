// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// Kind defines the kind of value stored in Properties
type Kind int

// kinds of values
const (
	KindFloat Kind = iota
	KindInt
	KindBool
	KindVector
	KindString
)

var kindNames = []string{"float", "int", "bool", "vector", "string"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value holds one material constant
type Value struct {
	Kind Kind
	F    float64
	I    int
	B    bool
	V    []float64
	S    string
}

// Properties holds the material constants shared by all law instances of a material.
// Values are set during setup; after Freeze() the table is read-only
type Properties struct {
	Id     int              // material id
	Table  map[string]Value // key => value
	frozen bool
}

// NewProperties returns a new empty table
func NewProperties(id int) *Properties {
	return &Properties{Id: id, Table: make(map[string]Value)}
}

// NewPropertiesFromPrms converts a list of parameters into Properties
func NewPropertiesFromPrms(id int, prms dbf.Params) (o *Properties, err error) {
	o = NewProperties(id)
	for _, p := range prms {
		err = o.SetFloat(p.N, p.V)
		if err != nil {
			return
		}
	}
	return
}

// Freeze forbids further modifications
func (o *Properties) Freeze() { o.frozen = true }

// Frozen tells whether Freeze has been called
func (o *Properties) Frozen() bool { return o.frozen }

// Has tells whether key exists
func (o *Properties) Has(key string) bool {
	_, ok := o.Table[key]
	return ok
}

// Keys returns the sorted list of keys
func (o *Properties) Keys() (keys []string) {
	for k := range o.Table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

// setters ////////////////////////////////////////////////////////////////////////////////////////

func (o *Properties) set(key string, v Value) error {
	if o.frozen {
		return kerr.Config(key, "properties of material %d are frozen", o.Id)
	}
	if o.Table == nil {
		o.Table = make(map[string]Value)
	}
	o.Table[key] = v
	return nil
}

// SetFloat sets a real value
func (o *Properties) SetFloat(key string, v float64) error {
	return o.set(key, Value{Kind: KindFloat, F: v})
}

// SetInt sets an integer value
func (o *Properties) SetInt(key string, v int) error {
	return o.set(key, Value{Kind: KindInt, I: v})
}

// SetBool sets a boolean value
func (o *Properties) SetBool(key string, v bool) error {
	return o.set(key, Value{Kind: KindBool, B: v})
}

// SetVector sets a list of real values
func (o *Properties) SetVector(key string, v []float64) error {
	return o.set(key, Value{Kind: KindVector, V: append([]float64{}, v...)})
}

// SetString sets a string value
func (o *Properties) SetString(key string, v string) error {
	return o.set(key, Value{Kind: KindString, S: v})
}

// getters ////////////////////////////////////////////////////////////////////////////////////////

func (o *Properties) get(key string) (v Value, err error) {
	v, ok := o.Table[key]
	if !ok {
		err = kerr.Config(key, "parameter is missing from material %d", o.Id)
	}
	return
}

func wrongKind(key string, v Value, want Kind) error {
	return kerr.Config(key, "value of kind %v cannot be read as %v", v.Kind, want)
}

// Float returns a real value. Integers are converted
func (o *Properties) Float(key string) (float64, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case KindFloat:
		return v.F, nil
	case KindInt:
		return float64(v.I), nil
	}
	return 0, wrongKind(key, v, KindFloat)
}

// Int returns an integer value. Reals with no fractional part are converted
func (o *Properties) Int(key string) (int, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case KindInt:
		return v.I, nil
	case KindFloat:
		if v.F == math.Trunc(v.F) {
			return int(v.F), nil
		}
	}
	return 0, wrongKind(key, v, KindInt)
}

// Bool returns a boolean value. Reals are true if positive
func (o *Properties) Bool(key string) (bool, error) {
	v, err := o.get(key)
	if err != nil {
		return false, err
	}
	switch v.Kind {
	case KindBool:
		return v.B, nil
	case KindFloat:
		return v.F > 0, nil
	}
	return false, wrongKind(key, v, KindBool)
}

// Vector returns a list of real values
func (o *Properties) Vector(key string) ([]float64, error) {
	v, err := o.get(key)
	if err != nil {
		return nil, err
	}
	if v.Kind != KindVector {
		return nil, wrongKind(key, v, KindVector)
	}
	return v.V, nil
}

// Str returns a string value
func (o *Properties) Str(key string) (string, error) {
	v, err := o.get(key)
	if err != nil {
		return "", err
	}
	if v.Kind != KindString {
		return "", wrongKind(key, v, KindString)
	}
	return v.S, nil
}

// FloatOr returns a real value or def if key is missing
func (o *Properties) FloatOr(key string, def float64) float64 {
	if v, err := o.Float(key); err == nil {
		return v
	}
	return def
}

// IntOr returns an integer value or def if key is missing
func (o *Properties) IntOr(key string, def int) int {
	if v, err := o.Int(key); err == nil {
		return v
	}
	return def
}

// BoolOr returns a boolean value or def if key is missing
func (o *Properties) BoolOr(key string, def bool) bool {
	if v, err := o.Bool(key); err == nil {
		return v
	}
	return def
}

// StrOr returns a string value or def if key is missing
func (o *Properties) StrOr(key string, def string) string {
	if v, err := o.Str(key); err == nil {
		return v
	}
	return def
}

// persistence ////////////////////////////////////////////////////////////////////////////////////

// Encode encodes the table
func (o *Properties) Encode(enc inp.Encoder) error {
	return enc.Encode(o)
}

// Decode decodes the table; the result is frozen
func (o *Properties) Decode(dec inp.Decoder) (err error) {
	err = dec.Decode(o)
	o.frozen = true
	return
}
