// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/mokhairy2019/Kratos-sub001/linsol"
	"github.com/mokhairy2019/Kratos-sub001/msolid"
	"github.com/mokhairy2019/Kratos-sub001/shp"
	"github.com/mokhairy2019/Kratos-sub001/tsr"
)

// ElemU represents a solid element with displacements u as primary variables.
// Laws with the Green-Lagrange strain measure are handled with the total Lagrangian formulation
type ElemU struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Shp  *shp.Shape  // shape structure (own copy)
	Nu   int         // total number of unknowns
	Ndim int         // space dimension
	Nsig int         // number of stress components (Voigt size of the law)

	// parameters
	Attrs     *shp.Attributes // extra flags
	Thickness float64         // thickness (for plane-stress)
	Rho       float64         // density of solids
	Cdam      float64         // coefficient for damping
	Large     bool            // total Lagrangian formulation

	// integration points
	IpsElem []shp.Ipoint // integration points of element

	// material model and internal variables
	Proto     msolid.Law         // prototype law (shared; never evaluated)
	Props     *msolid.Properties // material properties (shared)
	Laws      []msolid.Law       // [nip] one clone per integration point
	States    []*msolid.State    // [nip] states
	StatesBkp []*msolid.State    // [nip] backup states
	Ds        [][][]float64      // [nip][nsig][nsig] tangent computed by the last Update

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// scratchpad. computed @ each ip
	vmap *tsr.VoigtMap      // Voigt indices of strain components
	prm  *msolid.Parameters // input/output of laws
	fi   []float64          // [nu] internal forces
	K    [][]float64        // [nu][nu] consistent tangent (stiffness) matrix
	B    [][]float64        // [nsig][nu] B matrix
	D    [][]float64        // [nsig][nsig] constitutive tangent matrix
	F    [][]float64        // [3][3] deformation gradient
	Sig  [][]float64        // [3][3] stress tensor
	as   []float64          // [ndim] effective acceleration @ ip
	vs   []float64          // [ndim] velocity @ ip
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	infogetters["u"] = func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *Info {
		return displacementInfo(sim.Ndim, len(cell.Verts))
	}

	// element allocator
	eallocators["u"] = func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) (Elem, error) {

		// basic data
		var o ElemU
		var err error
		o.Cell = cell
		o.X = x
		o.Shp, err = shp.New(cell.Type)
		if err != nil {
			return nil, err
		}
		o.Ndim = len(x)
		o.Nu = o.Ndim * o.Shp.Nverts

		// flags
		o.Attrs, err = ParseExtra(edat.Extra, "thick")
		if err != nil {
			return nil, err
		}
		o.Thickness = 1.0
		if sim.Data.Pstress {
			o.Thickness = shp.GetValueOr(o.Attrs, "thick", 1.0)
		}

		// integration points
		o.IpsElem = o.Shp.Ips
		if edat.Nip > 0 && edat.Nip != o.Shp.PointsNumber() {
			return nil, kerr.Config("nip", "shape %q has %d integration points. nip=%d is not available", cell.Type, o.Shp.PointsNumber(), edat.Nip)
		}
		nip := len(o.IpsElem)

		// model
		o.Proto, o.Props, err = GetAndInitSolidLaw(sim.MatParams, edat.Mat, sim.Key, sim.Ndim, sim.Data.Pstress)
		if err != nil {
			return nil, err
		}
		o.Large = o.Proto.Measure() == msolid.GreenLagrange
		o.Nsig = o.Proto.VoigtSize()
		o.vmap, err = tsr.NewVoigtMap(o.Ndim, o.Nsig)
		if err != nil {
			return nil, err
		}
		o.Rho = o.Props.FloatOr("rho", 0)
		o.Cdam = o.Props.FloatOr("Cdam", 0)
		o.Laws = make([]msolid.Law, nip)
		for i := 0; i < nip; i++ {
			o.Laws[i] = o.Proto.Clone()
		}

		// scratchpad. computed @ each ip
		o.prm = msolid.NewParameters(o.Nsig, msolid.ComputeStress|msolid.ComputeTangent)
		o.prm.Eid = cell.Id
		o.fi = make([]float64, o.Nu)
		o.K = utl.Alloc(o.Nu, o.Nu)
		o.B = utl.Alloc(o.Nsig, o.Nu)
		o.D = utl.Alloc(o.Nsig, o.Nsig)
		o.F = tsr.Identity3()
		o.Sig = tsr.Alloc3()
		o.as = make([]float64, o.Ndim)
		o.vs = make([]float64, o.Ndim)

		// return new element
		return &o, nil
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *ElemU) Id() int { return o.Cell.Id }

// NodalDofs returns the number of dofs per node
func (o *ElemU) NodalDofs() int { return o.Ndim }

// SetEqs set equations
func (o *ElemU) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != o.Shp.Nverts {
		return kerr.Dimension("element equations", len(eqs), o.Shp.Nverts)
	}
	o.Umap = make([]int, o.Nu)
	for m := 0; m < o.Shp.Nverts; m++ {
		if len(eqs[m]) < o.Ndim {
			return kerr.Dimension("equations of node", len(eqs[m]), o.Ndim)
		}
		for i := 0; i < o.Ndim; i++ {
			o.Umap[i+m*o.Ndim] = eqs[m][i]
		}
	}
	return
}

// Check validates element and material data
func (o *ElemU) Check(ndim int) (err error) {
	if o.Shp.Gndim != ndim {
		return kerr.Dimension(io.Sf("geometry dimension of shape %q", o.Shp.Type), o.Shp.Gndim, ndim)
	}
	if o.Proto.WorkingSpaceDimension() != ndim {
		return kerr.Dimension("working space dimension of law "+o.Proto.Name(), o.Proto.WorkingSpaceDimension(), ndim)
	}
	if o.Thickness <= 0 {
		return kerr.Config("thick", "thickness must be positive. %g is invalid", o.Thickness)
	}
	return o.Proto.Check(o.Props, ndim)
}

// AddToRhs adds -R to global residual vector fb
func (o *ElemU) AddToRhs(fb []float64, sol *Solution) (err error) {

	// clear internal forces
	for i := range o.fi {
		o.fi[i] = 0
	}

	// for each integration point
	nverts := o.Shp.Nverts
	for idx, ip := range o.IpsElem {

		// interpolation functions, gradients and B matrix
		err = o.ipvars(ip, sol)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3] * o.Thickness
		S := o.Shp.S

		// internal forces: fi += coef * tr(B) * σ
		σ := o.States[idx].Sig
		for r := 0; r < o.Nu; r++ {
			for I := 0; I < o.Nsig; I++ {
				o.fi[r] += coef * o.B[I][r] * σ[I]
			}
		}

		// dynamic term
		if sol.Dyn != nil {
			o.ipderivs(sol)
			for m := 0; m < nverts; m++ {
				for i := 0; i < o.Ndim; i++ {
					o.fi[i+m*o.Ndim] += coef * S[m] * (o.Rho*o.as[i] + o.Cdam*o.vs[i])
				}
			}
		}
	}

	// assemble
	for i, I := range o.Umap {
		fb[I] -= o.fi[i]
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *ElemU) AddToKb(Kb *linsol.Triplet, sol *Solution, firstIt bool) (err error) {

	// zero K matrix
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			o.K[i][j] = 0
		}
	}

	// for each integration point
	nverts := o.Shp.Nverts
	for idx, ip := range o.IpsElem {

		// interpolation functions, gradients and B matrix
		err = o.ipvars(ip, sol)
		if err != nil {
			return
		}
		if o.Shp.J < 0 {
			return chk.Err("ElemU: eid=%d: Jacobian is negative = %g\n", o.Id(), o.Shp.J)
		}
		coef := o.Shp.J * ip[3] * o.Thickness
		S := o.Shp.S
		G := o.Shp.G

		// constitutive tangent: elastic at the first iteration of a step
		D := o.Ds[idx]
		if firstIt && !o.Large {
			o.Laws[idx].CalculateConstitutiveMatrixPK2(o.D)
			D = o.D
		}

		// K += coef * tr(B) * D * B
		for r := 0; r < o.Nu; r++ {
			for I := 0; I < o.Nsig; I++ {
				if o.B[I][r] == 0 {
					continue
				}
				for J := 0; J < o.Nsig; J++ {
					c := coef * o.B[I][r] * D[I][J]
					for s := 0; s < o.Nu; s++ {
						o.K[r][s] += c * o.B[J][s]
					}
				}
			}
		}

		// geometric stiffness: K[mi][ni] += coef * G[m] · S · G[n]
		if o.Large {
			tsr.StressVectorToTensor(o.Sig, o.States[idx].Sig)
			for m := 0; m < nverts; m++ {
				for n := 0; n < nverts; n++ {
					var g float64
					for j := 0; j < o.Ndim; j++ {
						for k := 0; k < o.Ndim; k++ {
							g += G[m][j] * o.Sig[j][k] * G[n][k]
						}
					}
					for i := 0; i < o.Ndim; i++ {
						o.K[i+m*o.Ndim][i+n*o.Ndim] += coef * g
					}
				}
			}
		}

		// dynamic term
		if sol.Dyn != nil {
			cm := o.Rho*sol.Dyn.CM + o.Cdam*sol.Dyn.CC
			for m := 0; m < nverts; m++ {
				for n := 0; n < nverts; n++ {
					for i := 0; i < o.Ndim; i++ {
						o.K[i+m*o.Ndim][i+n*o.Ndim] += coef * S[m] * S[n] * cm
					}
				}
			}
		}
	}

	// add K to sparse matrix Kb
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.K[i][j])
		}
	}
	return
}

// Update computes the trial stresses and tangents from the current solution
func (o *ElemU) Update(sol *Solution) (err error) {
	o.prm.Time, o.prm.Dt = sol.T, sol.Dt
	for idx, ip := range o.IpsElem {

		// interpolation functions, gradients and kinematics
		err = o.ipvars(ip, sol)
		if err != nil {
			return
		}

		// call law
		o.prm.Ipid = idx
		o.prm.ShapeN = o.Shp.S
		o.prm.D = o.Ds[idx]
		if o.Large {
			o.prm.F = o.F
			o.prm.DetF = tsr.Det3(o.F)
		} else {
			o.prm.F = nil
			o.strains(o.prm.Strain, sol.Y)
		}
		err = o.Laws[idx].CalculateMaterialResponse(o.States[idx], o.prm)
		if err != nil {
			return chk.Err("Update failed (eid=%d, ip=%d):\n%v", o.Id(), idx, err)
		}
	}
	return
}

// Finalize commits the trial state of all integration points
func (o *ElemU) Finalize(sol *Solution) (err error) {
	o.prm.Time, o.prm.Dt = sol.T, sol.Dt
	for idx := range o.IpsElem {
		o.prm.Ipid = idx
		err = o.Laws[idx].FinalizeMaterialResponse(o.States[idx], o.prm)
		if err != nil {
			return chk.Err("Finalize failed (eid=%d, ip=%d):\n%v", o.Id(), idx, err)
		}
	}
	return
}

// internal variables ///////////////////////////////////////////////////////////////////////////////

// Ipoints returns the real coordinates of integration points [nip][ndim]
func (o *ElemU) Ipoints() (coords [][]float64) {
	coords = make([][]float64, len(o.IpsElem))
	for idx, ip := range o.IpsElem {
		coords[idx] = o.Shp.IpRealCoords(o.X, ip)
	}
	return
}

// SetIniIvs sets initial ivs for given values in sol and ivs map.
// ivs may hold the initial stresses; e.g. {"sx": [nip values], "sy": ..., "sxy": ...}
func (o *ElemU) SetIniIvs(sol *Solution, ivs map[string][]float64) (err error) {
	nip := len(o.IpsElem)
	o.States = make([]*msolid.State, nip)
	o.StatesBkp = make([]*msolid.State, nip)
	o.Ds = make([][][]float64, nip)
	σ := make([]float64, o.Nsig)
	keys := StressKeys(o.Nsig)
	for i := 0; i < nip; i++ {
		for j, key := range keys {
			σ[j] = 0
			if vals, ok := ivs[key]; ok {
				if len(vals) != nip {
					return kerr.Dimension("initial values of "+key, len(vals), nip)
				}
				σ[j] = vals[i]
			}
		}
		o.States[i], err = o.Laws[i].InitIntVars(σ)
		if err != nil {
			return
		}
		o.StatesBkp[i] = o.States[i].GetCopy()
		o.Ds[i] = utl.Alloc(o.Nsig, o.Nsig)
		o.Laws[i].CalculateConstitutiveMatrixPK2(o.Ds[i])
	}
	return
}

// BackupIvs create copy of internal variables
func (o *ElemU) BackupIvs() (err error) {
	for i, s := range o.StatesBkp {
		s.Set(o.States[i])
	}
	return
}

// RestoreIvs restore internal variables from copies
func (o *ElemU) RestoreIvs() (err error) {
	for i, s := range o.States {
		s.Set(o.StatesBkp[i])
	}
	return
}

// IpStresses returns a copy of the stresses at all integration points [nip][nsig]
func (o *ElemU) IpStresses() (σ [][]float64) {
	σ = make([][]float64, len(o.States))
	for i, s := range o.States {
		σ[i] = make([]float64, len(s.Sig))
		copy(σ[i], s.Sig)
	}
	return
}

// writer ///////////////////////////////////////////////////////////////////////////////////////////

// Encode encodes internal variables
func (o *ElemU) Encode(enc inp.Encoder) (err error) {
	for _, s := range o.States {
		err = s.Encode(enc)
		if err != nil {
			return
		}
	}
	return
}

// Decode decodes internal variables
func (o *ElemU) Decode(dec inp.Decoder) (err error) {
	for _, s := range o.States {
		err = s.Decode(dec)
		if err != nil {
			return
		}
	}
	return o.BackupIvs()
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// StressKeys returns the keys of the nsig stress components
func StressKeys(nsig int) []string {
	switch nsig {
	case 6:
		return []string{"sx", "sy", "sz", "sxy", "syz", "szx"}
	case 3:
		return []string{"sx", "sy", "sxy"}
	}
	return []string{"sx", "sy", "sz", "sxy"}
}

// ipvars computes S, G, the deformation gradient and the B matrix @ integration point
func (o *ElemU) ipvars(ip shp.Ipoint, sol *Solution) (err error) {

	// interpolation functions and gradients
	err = o.Shp.CalcAtIp(o.X, ip, true)
	if err != nil {
		return
	}
	G := o.Shp.G

	// deformation gradient: F = I + du/dX
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.F[i][j] = 0
		}
		o.F[i][i] = 1
	}
	if o.Large {
		for m := 0; m < o.Shp.Nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				u := sol.Y[o.Umap[i+m*o.Ndim]]
				for j := 0; j < o.Ndim; j++ {
					o.F[i][j] += u * G[m][j]
				}
			}
		}
	}

	// B matrix: variation of strains (engineering shear) w.r.t nodal displacements.
	// In 2D, the zz row (if any) is zero
	F := o.F
	for m := 0; m < o.Shp.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			c := i + m*o.Ndim
			for k, I := range o.vmap.Normal {
				if I < 0 {
					continue
				}
				o.B[I][c] = 0
				if k < o.Ndim {
					o.B[I][c] = F[i][k] * G[m][k]
				}
			}
			for _, sh := range o.vmap.Shear {
				k, l := sh[1], sh[2]
				o.B[sh[0]][c] = F[i][k]*G[m][l] + F[i][l]*G[m][k]
			}
		}
	}
	return
}

// strains computes the small strains ε = B u; B must be computed with F = I
func (o *ElemU) strains(ε, y []float64) {
	for I := 0; I < o.Nsig; I++ {
		ε[I] = 0
		for r, eq := range o.Umap {
			ε[I] += o.B[I][r] * y[eq]
		}
	}
}

// ipderivs computes the effective acceleration and the velocity @ integration point
func (o *ElemU) ipderivs(sol *Solution) {
	α := sol.Dyn.AlphaM
	for i := 0; i < o.Ndim; i++ {
		o.as[i], o.vs[i] = 0, 0
		for m := 0; m < o.Shp.Nverts; m++ {
			r := o.Umap[i+m*o.Ndim]
			o.as[i] += o.Shp.S[m] * ((1.0-α)*sol.D2ydt2[r] + α*sol.Aold[r])
			o.vs[i] += o.Shp.S[m] * sol.Dydt[r]
		}
	}
}
