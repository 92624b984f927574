// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"sort"

	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// Attributes holds typed values attached to an element or condition; e.g. "thickness", "area"
type Attributes struct {
	vals map[string]any
}

// SetValue sets the value of key
func (o *Attributes) SetValue(key string, v any) {
	if o.vals == nil {
		o.vals = make(map[string]any)
	}
	o.vals[key] = v
}

// Has tells whether key is set
func (o *Attributes) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Keys returns the sorted keys
func (o *Attributes) Keys() (keys []string) {
	for k := range o.vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

// GetValue returns the value of key with type T
func GetValue[T any](o *Attributes, key string) (v T, err error) {
	a, ok := o.vals[key]
	if !ok {
		return v, kerr.Config(key, "attribute %q is not set", key)
	}
	v, ok = a.(T)
	if !ok {
		return v, kerr.Config(key, "attribute %q has type %T", key, a)
	}
	return
}

// GetValueOr returns the value of key with type T or def if key is not set
func GetValueOr[T any](o *Attributes, key string, def T) T {
	v, err := GetValue[T](o, key)
	if err != nil {
		return def
	}
	return v
}
