// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/mokhairy2019/Kratos-sub001/msolid"
	"github.com/mokhairy2019/Kratos-sub001/shp"
)

// protoLaw holds an initialised law shared by all elements with the same material.
// Elements never use it directly; they clone it for each integration point
type protoLaw struct {
	law   msolid.Law
	props *msolid.Properties
}

// lawdb holds prototypes; (simulation key, material, ndim, pstress) => law
var lawdb = struct {
	sync.Mutex
	protos map[string]*protoLaw
}{protos: make(map[string]*protoLaw)}

// GetAndInitSolidLaw returns the prototype law and the frozen properties of material matname.
// The same material in the same simulation gives the same prototype
func GetAndInitSolidLaw(mdb *inp.MatDb, matname, simfnk string, ndim int, pstress bool) (law msolid.Law, props *msolid.Properties, err error) {

	// material
	matdata := mdb.Get(matname)
	if matdata == nil {
		return nil, nil, kerr.Config("mat", "materials database has no material named %q", matname)
	}

	// existent prototype
	key := io.Sf("%s_%s_%d_%v", simfnk, matname, ndim, pstress)
	lawdb.Lock()
	defer lawdb.Unlock()
	if p, ok := lawdb.protos[key]; ok {
		return p.law, p.props, nil
	}

	// properties
	props, err = msolid.NewPropertiesFromPrms(len(lawdb.protos), matdata.Prms)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot set properties of material %q:\n%w", matname, err)
	}
	props.Freeze()

	// new law
	law, err = msolid.NewAndInit(matdata.Model, ndim, pstress, props)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot initialise law of material %q:\n%w", matname, err)
	}
	lawdb.protos[key] = &protoLaw{law, props}
	return
}

// ParseExtra parses the extra flags (keycode format) of elements into attributes.
// Only the given keys are parsed; they must hold numbers. ex: "!thick:0.2 !area:0.1"
func ParseExtra(extra string, keys ...string) (attrs *shp.Attributes, err error) {
	attrs = new(shp.Attributes)
	for _, key := range keys {
		if str, found := io.Keycode(extra, key); found {
			v, e := strconv.ParseFloat(str, 64)
			if e != nil {
				return nil, kerr.Config(key, "extra flag %q must be a number. %q is invalid", key, str)
			}
			attrs.SetValue(key, v)
		}
	}
	return
}
