// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"fmt"

	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// SmallPlastic implements small strain elastoplasticity with a FlowRule, YieldCriterion and
// HardeningLaw. The stress is computed from the committed plastic strain:
//  σtr = σ0 + De : (ε - εp)   then   σ = ReturnMapping(σtr)
type SmallPlastic struct {
	LinElast // elastic part

	// triad
	Flow FlowRule // flow rule (owns yield criterion and hardening)

	// configuration
	Model string  // "vm", "dp" or "vm-thermal"
	Hard  string  // name of hardening law
	M     float64 // Drucker-Prager slope (dp only)
	Mb    float64 // slope of plastic potential (dp only)
	Tref  float64 // default temperature when nodal temperatures are not available

	// scratch
	ret *Return
	σtr []float64
}

// add laws to factory
func init() {
	register("vm", func() Law { return &SmallPlastic{Model: "vm"} })
	register("dp", func() Law { return &SmallPlastic{Model: "dp"} })
	register("vm-thermal", func() Law { return &SmallPlastic{Model: "vm-thermal"} })
}

// Name returns the name of this law
func (o *SmallPlastic) Name() string { return o.Model }

// Check validates parameters
func (o *SmallPlastic) Check(props *Properties, ndim int) (err error) {
	err = o.LinElast.Check(props, ndim)
	if err != nil {
		return
	}
	_, err = initialYield(props)
	if err != nil && o.Model == "dp" && props.Has("c") {
		err = nil
	}
	return
}

// Init initialises law
func (o *SmallPlastic) Init(ndim int, pstress bool, props *Properties) (err error) {

	// elastic part
	if pstress {
		return kerr.Config("pstress", "law %q does not support plane-stress", o.Model)
	}
	err = o.LinElast.Init(ndim, false, props)
	if err != nil {
		return
	}
	o.Tref = props.FloatOr("Tref", 0)

	// hardening
	switch o.Model {
	case "vm-thermal":
		o.Hard = props.StrOr("hard", "thermal-linear")
	default:
		o.Hard = props.StrOr("hard", "linear")
	}

	// Drucker-Prager slopes
	if o.Model == "dp" {
		o.M = props.FloatOr("M", 0)
		o.Mb = props.FloatOr("Mb", o.M)
		if props.Has("phi") {
			c := props.FloatOr("c", 0)
			φ := props.FloatOr("phi", 0)
			var qy0 float64
			o.M, qy0, err = Mmatch(c, φ, props.IntOr("typ", 0))
			if err != nil {
				return
			}
			o.Mb = props.FloatOr("Mb", o.M)
			if !props.Has("sy0") && !props.Has("qy0") {
				props = withYield(props, qy0)
			}
		}
		if o.M < 0 {
			return kerr.Config("M", "slope must be non-negative. M = %g", o.M)
		}
	}
	var hard HardeningLaw
	hard, err = NewHardening(o.Hard, props)
	if err != nil {
		return
	}
	o.build(hard)
	return
}

// withYield returns a copy of props with qy0 set
func withYield(props *Properties, qy0 float64) *Properties {
	p := NewProperties(props.Id)
	for k, v := range props.Table {
		p.Table[k] = v
	}
	p.SetFloat("qy0", qy0)
	p.Freeze()
	return p
}

// build allocates the flow rule and scratch
func (o *SmallPlastic) build(hard HardeningLaw) {
	if o.Model == "dp" {
		o.Flow = NewDPReturn(o.K, o.G, o.M, o.Mb, hard)
	} else {
		o.Flow = NewRadialReturn(o.K, o.G, hard)
	}
	o.ret = NewReturn(o.Nsig)
	o.σtr = make([]float64, o.Nsig)
}

// Clone returns an independent copy
func (o *SmallPlastic) Clone() Law {
	p := *o
	p.De = cloneMat(o.De)
	p.Flow = o.Flow.Clone()
	p.ret = NewReturn(o.Nsig)
	p.σtr = make([]float64, o.Nsig)
	return &p
}

// InitIntVars initialises internal (secondary) variables
func (o *SmallPlastic) InitIntVars(σ0 []float64) (s *State, err error) {
	if len(σ0) != o.Nsig {
		return nil, kerr.Dimension("initial stresses", len(σ0), o.Nsig)
	}
	s = NewState(o.Nsig, 1, true, false)
	copy(s.Sig0, σ0)
	copy(s.Sig, σ0)
	return
}

// CalculateMaterialResponse computes stresses by return mapping from the committed history
func (o *SmallPlastic) CalculateMaterialResponse(s *State, p *Parameters) (err error) {

	// trial stress
	ε := p.Strain
	err = checkStrain(ε, o.Nsig)
	if err != nil {
		return
	}
	copy(s.Eps, ε)
	for i := 0; i < o.Nsig; i++ {
		o.σtr[i] = s.Sig0[i]
		for j := 0; j < o.Nsig; j++ {
			o.σtr[i] += o.De[i][j] * (ε[j] - s.EpsP[j])
		}
	}

	// return mapping
	T := p.Temperature(o.Tref)
	α0 := s.Alp[0]
	err = o.Flow.ReturnMapping(o.ret, o.σtr, α0, T)
	if err != nil {
		return fmt.Errorf("%s: return mapping failed at element %d, ip %d: %w", o.Model, p.Eid, p.Ipid, err)
	}

	// trial history
	s.trialFromCommitted()
	copy(s.Sig, o.ret.Sig)
	s.Loading, s.ApexReturn, s.Dgam = o.ret.Loading, o.ret.Apex, o.ret.Dgam
	s.AlpTr[0] = o.ret.Alp
	s.DeltaEpsP = o.ret.Alp - α0
	var dw float64
	for i := 0; i < o.Nsig; i++ {
		Δεp := o.ret.Dgam * o.ret.Nflow[i]
		s.EpsPtr[i] = s.EpsP[i] + Δεp
		dw += s.Sig[i] * Δεp
	}
	s.DissTr = s.Dissipation + dw
	s.Pending = true

	// output
	p.output(s.Sig)
	if p.tangent() {
		o.Flow.ConsistentD(p.D, o.ret, T)
	}
	return
}

// FinalizeMaterialResponse commits plastic strains and internal variables
func (o *SmallPlastic) FinalizeMaterialResponse(s *State, p *Parameters) error {
	s.commit()
	return nil
}

// plasticData holds the persistent data of SmallPlastic
type plasticData struct {
	Model, Hard string
	M, Mb, Tref float64
}

// Encode encodes law configuration
func (o *SmallPlastic) Encode(enc inp.Encoder) (err error) {
	err = o.LinElast.Encode(enc)
	if err != nil {
		return
	}
	err = enc.Encode(plasticData{o.Model, o.Hard, o.M, o.Mb, o.Tref})
	if err != nil {
		return
	}
	return encodeHardening(enc, o.Flow.Criterion().Hardening())
}

// Decode decodes law configuration
func (o *SmallPlastic) Decode(dec inp.Decoder) (err error) {
	err = o.LinElast.Decode(dec)
	if err != nil {
		return
	}
	var d plasticData
	err = dec.Decode(&d)
	if err != nil {
		return
	}
	o.Model, o.Hard, o.M, o.Mb, o.Tref = d.Model, d.Hard, d.M, d.Mb, d.Tref
	hard, err := decodeHardening(dec)
	if err != nil {
		return
	}
	o.build(hard)
	return
}
