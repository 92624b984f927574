// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// solFile holds the converged nodal values written to nodes files
type solFile struct {
	T      float64
	Y      []float64
	Dydt   []float64
	D2ydt2 []float64
}

// SaveSol saves solution (o.Sol) to a file which name is set with tidx (time output index)
func (o *Domain) SaveSol(tidx int, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := inp.GetEncoder(&buf, o.Sim.EncType)

	// encode Sol
	err = enc.Encode(solFile{o.Sol.T, o.Sol.Y, o.Sol.Dydt, o.Sol.D2ydt2})
	if err != nil {
		return chk.Err("cannot encode Domain.Sol\n%v", err)
	}

	// save file
	fn := out_nod_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf, verbose)
}

// ReadSol reads Solution from a file which name is set with tidx (time output index).
// The values are taken as converged; i.e. the values of the previous step are set as well
func (o *Domain) ReadSol(dir, fnkey, enctype string, tidx int) (err error) {

	// open file
	fn := out_nod_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decode Sol
	var res solFile
	err = inp.GetDecoder(fil, enctype).Decode(&res)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol\n%v", err)
	}
	if len(res.Y) != o.Ny {
		return kerr.Dimension("solution read from file", len(res.Y), o.Ny)
	}
	o.Sol.T = res.T
	copy(o.Sol.Y, res.Y)
	copy(o.Sol.Yold, res.Y)
	copy(o.Sol.Dydt, res.Dydt)
	copy(o.Sol.Vold, res.Dydt)
	copy(o.Sol.D2ydt2, res.D2ydt2)
	copy(o.Sol.Aold, res.D2ydt2)
	for i := range o.Sol.ΔY {
		o.Sol.ΔY[i] = 0
	}
	return
}

// SaveIvs saves elements's internal values to a file which name is set with tidx (time output index)
func (o *Domain) SaveIvs(tidx int, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := inp.GetEncoder(&buf, o.Sim.EncType)

	// elements that go to file
	err = enc.Encode(o.MyCids)
	if err != nil {
		return chk.Err("cannot encode elements ids:\n%v", err)
	}

	// encode internal variables
	for _, e := range o.Elems {
		err = e.Encode(enc)
		if err != nil {
			return chk.Err("cannot encode element %d:\n%v", e.Id(), err)
		}
	}

	// save file
	fn := out_ele_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf, verbose)
}

// ReadIvs reads elements's internal values from a file which name is set with tidx (time output index)
func (o *Domain) ReadIvs(dir, fnkey, enctype string, tidx int) (err error) {

	// open file
	fn := out_ele_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decoder
	dec := inp.GetDecoder(fil, enctype)

	// elements that are in file
	var cids []int
	err = dec.Decode(&cids)
	if err != nil {
		return chk.Err("cannot decode elements ids:\n%v", err)
	}

	// decode internal variables
	for _, cid := range cids {
		if cid < 0 || cid >= len(o.Cid2elem) || o.Cid2elem[cid] == nil {
			return chk.Err("cannot find element with cid=%d", cid)
		}
		err = o.Cid2elem[cid].Decode(dec)
		if err != nil {
			return chk.Err("cannot decode element %d:\n%v", cid, err)
		}
	}
	return
}

// Save saves Solution and internal values to files
func (o *Domain) Save(tidx int, verbose bool) (err error) {
	err = o.SaveSol(tidx, verbose)
	if err != nil {
		return
	}
	return o.SaveIvs(tidx, verbose)
}

// Read performs the inverse operation of Save using the locations recorded in the summary
func (o *Domain) Read(sum *Summary, tidx int) (err error) {
	err = o.ReadIvs(sum.Dirout, sum.Fnkey, o.Sim.EncType, tidx)
	if err != nil {
		return
	}
	return o.ReadSol(sum.Dirout, sum.Fnkey, o.Sim.EncType, tidx)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_nod_path(dir, fnkey, enctype string, tidx int) string {
	return filepath.Join(dir, io.Sf("%s_nod_%010d.%s", fnkey, tidx, enctype))
}

func out_ele_path(dir, fnkey, enctype string, tidx int) string {
	return filepath.Join(dir, io.Sf("%s_ele_%010d.%s", fnkey, tidx, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
