// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// HardeningLaw defines the evolution of the yield stress κ with the equivalent plastic strain α
// and, optionally, the temperature T
type HardeningLaw interface {
	Name() string                 // name of hardening law in factory
	Init(props *Properties) error // initialises hardening law
	Clone() HardeningLaw          // returns an independent copy
	Yield(α, T float64) float64   // κ(α, T): current yield stress
	Slope(α, T float64) float64   // dκ/dα
	Encode(enc inp.Encoder) error // encodes configuration
	Decode(dec inp.Decoder) error // decodes configuration
}

// hardallocators holds all available hardening laws
var hardallocators = make(map[string]func() HardeningLaw)

// NewHardening returns a new hardening law initialised with props
func NewHardening(name string, props *Properties) (h HardeningLaw, err error) {
	allocator, ok := hardallocators[name]
	if !ok {
		return nil, kerr.Config("hard", "hardening law %q is not available", name)
	}
	h = allocator()
	err = h.Init(props)
	if err != nil {
		return nil, err
	}
	return
}

// HardeningNames returns the names of all available hardening laws
func HardeningNames() (names []string) {
	for name := range hardallocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func init() {
	hardallocators["linear"] = func() HardeningLaw { return new(LinearHardening) }
	hardallocators["exponential"] = func() HardeningLaw { return new(ExpHardening) }
	hardallocators["thermal-linear"] = func() HardeningLaw { return new(ThermalHardening) }
}

// initialYield reads sy0 (uniaxial) or qy0 (equivalent) from props
func initialYield(props *Properties) (sy0 float64, err error) {
	key := "sy0"
	if !props.Has(key) && props.Has("qy0") {
		key = "qy0"
	}
	sy0, err = props.Float(key)
	if err != nil {
		return
	}
	if sy0 < 0 {
		return 0, kerr.Config(key, "initial yield stress must be non-negative. %s = %g", key, sy0)
	}
	return
}

// LinearHardening implements κ = sy0 + H α
type LinearHardening struct {
	Sy0 float64 // initial yield stress
	H   float64 // hardening modulus
}

// Name returns the name of this hardening law
func (o *LinearHardening) Name() string { return "linear" }

// Init initialises hardening law
func (o *LinearHardening) Init(props *Properties) (err error) {
	o.Sy0, err = initialYield(props)
	o.H = props.FloatOr("H", 0)
	return
}

// Clone returns an independent copy
func (o *LinearHardening) Clone() HardeningLaw { p := *o; return &p }

// Yield returns κ
func (o *LinearHardening) Yield(α, T float64) float64 { return o.Sy0 + o.H*α }

// Slope returns dκ/dα
func (o *LinearHardening) Slope(α, T float64) float64 { return o.H }

// Encode encodes configuration
func (o *LinearHardening) Encode(enc inp.Encoder) error { return enc.Encode(o) }

// Decode decodes configuration
func (o *LinearHardening) Decode(dec inp.Decoder) error { return dec.Decode(o) }

// ExpHardening implements saturation hardening
//  κ = syinf - (syinf - sy0) exp(-δ α) + H α
type ExpHardening struct {
	Sy0   float64 // initial yield stress
	SyInf float64 // saturation yield stress
	Delta float64 // saturation exponent
	H     float64 // linear part
}

// Name returns the name of this hardening law
func (o *ExpHardening) Name() string { return "exponential" }

// Init initialises hardening law
func (o *ExpHardening) Init(props *Properties) (err error) {
	o.Sy0, err = initialYield(props)
	if err != nil {
		return
	}
	o.SyInf = props.FloatOr("syinf", o.Sy0)
	o.Delta = props.FloatOr("delta", 0)
	o.H = props.FloatOr("H", 0)
	if o.Delta < 0 {
		return kerr.Config("delta", "saturation exponent must be non-negative. delta = %g", o.Delta)
	}
	return
}

// Clone returns an independent copy
func (o *ExpHardening) Clone() HardeningLaw { p := *o; return &p }

// Yield returns κ
func (o *ExpHardening) Yield(α, T float64) float64 {
	return o.SyInf - (o.SyInf-o.Sy0)*math.Exp(-o.Delta*α) + o.H*α
}

// Slope returns dκ/dα
func (o *ExpHardening) Slope(α, T float64) float64 {
	return o.Delta*(o.SyInf-o.Sy0)*math.Exp(-o.Delta*α) + o.H
}

// Encode encodes configuration
func (o *ExpHardening) Encode(enc inp.Encoder) error { return enc.Encode(o) }

// Decode decodes configuration
func (o *ExpHardening) Decode(dec inp.Decoder) error { return dec.Decode(o) }

// ThermalHardening implements linear hardening with thermal softening
//  κ = sy0 θs(T) + H θh(T) α   with   θ(T) = max(0, 1 - θ (T - Tref))
type ThermalHardening struct {
	Sy0    float64 // initial yield stress at Tref
	H      float64 // hardening modulus at Tref
	Tref   float64 // reference temperature
	ThetaS float64 // softening coefficient of the yield stress
	ThetaH float64 // softening coefficient of the hardening modulus
}

// Name returns the name of this hardening law
func (o *ThermalHardening) Name() string { return "thermal-linear" }

// Init initialises hardening law
func (o *ThermalHardening) Init(props *Properties) (err error) {
	o.Sy0, err = initialYield(props)
	if err != nil {
		return
	}
	o.H = props.FloatOr("H", 0)
	o.Tref = props.FloatOr("Tref", 0)
	o.ThetaS = props.FloatOr("thetas", 0)
	o.ThetaH = props.FloatOr("thetah", 0)
	return
}

// Clone returns an independent copy
func (o *ThermalHardening) Clone() HardeningLaw { p := *o; return &p }

func (o *ThermalHardening) factor(θ, T float64) float64 {
	return math.Max(0, 1.0-θ*(T-o.Tref))
}

// Yield returns κ
func (o *ThermalHardening) Yield(α, T float64) float64 {
	return o.Sy0*o.factor(o.ThetaS, T) + o.H*o.factor(o.ThetaH, T)*α
}

// Slope returns dκ/dα
func (o *ThermalHardening) Slope(α, T float64) float64 {
	return o.H * o.factor(o.ThetaH, T)
}

// Encode encodes configuration
func (o *ThermalHardening) Encode(enc inp.Encoder) error { return enc.Encode(o) }

// Decode decodes configuration
func (o *ThermalHardening) Decode(dec inp.Decoder) error { return dec.Decode(o) }

// encodeHardening writes the name followed by the configuration
func encodeHardening(enc inp.Encoder, h HardeningLaw) (err error) {
	err = enc.Encode(h.Name())
	if err != nil {
		return
	}
	return h.Encode(enc)
}

// decodeHardening reads what encodeHardening wrote
func decodeHardening(dec inp.Decoder) (h HardeningLaw, err error) {
	var name string
	err = dec.Decode(&name)
	if err != nil {
		return
	}
	allocator, ok := hardallocators[name]
	if !ok {
		return nil, chk.Err("cannot decode hardening law %q", name)
	}
	h = allocator()
	err = h.Decode(dec)
	return
}
