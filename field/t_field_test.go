// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_field01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field01")

	man := NewManager()
	vol := man.Get(Volume)
	dmg := man.Get(Damage)
	require.Equal(tst, vol, man.Get(Volume))
	require.Equal(tst, 2, man.Nfields())
	require.Equal(tst, TwoStep, man.Spec(dmg).Temporal)

	id, err := man.Register(Spec{Relation: Point, Length: Scalar, Temporal: TwoStep, Label: Volume})
	require.Error(tst, err)
	require.Equal(tst, Id(-1), id)

	other, err := man.Register(Spec{Relation: Bond, Length: Scalar, Temporal: TwoStep, Label: "My_Bond_Field"})
	require.NoError(tst, err)
	lid, ok := man.Lookup("My_Bond_Field")
	require.True(tst, ok)
	require.Equal(tst, other, lid)

	require.Panics(tst, func() { man.Get("Unknown_Field") })
}

func Test_field02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field02")

	man := NewManager()
	vol := man.Get(Volume)
	dmg := man.Get(Damage)
	bdmg := man.Get(BondDamage)
	frc := man.Get(ForceDensity)
	store := NewStore(man, 3, 4, []Id{vol, dmg, bdmg, frc, dmg})
	require.Len(tst, store.Ids(), 4)
	require.Len(tst, store.Get(frc, StepNP1), 9)
	require.Len(tst, store.Get(bdmg, StepN), 4)

	// constant fields ignore the step
	store.Fill(vol, StepNone, 2)
	chk.Array(tst, "vol", 1e-17, store.Get(vol, StepNP1), []float64{2, 2, 2})

	// stepped fields need a step
	require.Panics(tst, func() { store.Get(dmg, StepNone) })

	// priming copies N into NP1 and Accept copies back
	bn := store.Get(bdmg, StepN)
	bn[1] = 0.5
	store.StartStep(bdmg)
	bnp1 := store.Get(bdmg, StepNP1)
	chk.Array(tst, "bdmgNP1", 1e-17, bnp1, []float64{0, 0.5, 0, 0})
	bnp1[2] = 1
	chk.Array(tst, "bdmgN", 1e-17, bn, []float64{0, 0.5, 0, 0})
	store.Accept()
	chk.Array(tst, "bdmgN", 1e-17, bn, []float64{0, 0.5, 1, 0})

	store.FillBoth(dmg, 0.25)
	chk.Array(tst, "dmgN", 1e-17, store.Get(dmg, StepN), []float64{0.25, 0.25, 0.25})
	chk.Array(tst, "dmgNP1", 1e-17, store.Get(dmg, StepNP1), []float64{0.25, 0.25, 0.25})
	store.Zero(dmg, StepNP1)
	chk.Array(tst, "dmgNP1", 1e-17, store.Get(dmg, StepNP1), []float64{0, 0, 0})

	require.Panics(tst, func() { store.Get(man.Get(Dilatation), StepN) })
}
