// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// labels of standard fields
const (
	Volume                     = "Volume"
	Horizon                    = "Horizon"
	ModelCoordinates           = "Model_Coordinates"
	Coordinates                = "Coordinates"
	Velocity                   = "Velocity"
	ForceDensity               = "Force_Density"
	WeightedVolume             = "Weighted_Volume"
	SurfaceCorrectionFactor    = "Surface_Correction_Factor"
	Dilatation                 = "Dilatation"
	Damage                     = "Damage"
	BondDamage                 = "Bond_Damage"
	TemperatureChange          = "Temperature_Change"
	VonMisesStress             = "Von_Mises_Stress"
	EquivalentPlasticStrain    = "Equivalent_Plastic_Strain"
	CumulativeAdiabaticHeat    = "Cumulative_Adiabatic_Heat"
	DeviatoricPlasticExtension = "Deviatoric_Plastic_Extension"
	DeviatoricForceDensity     = "Deviatoric_Force_Density"
	DeviatoricBackExtension    = "Deviatoric_Back_Extension"
	MicroPotential             = "Micro-Potential"
	SpecularBondPosition       = "Specular_Bond_Position"
	VolumeRatio                = "Volume_Ratio"
	RateOfDeformation          = "Unrotated_Rate_Of_Deformation"
	CauchyStress               = "Unrotated_Cauchy_Stress"
	StrainEnergyDensity        = "Strain_Energy_Density"
)

var standard = map[string]Spec{
	Volume:                     {Relation: Point, Length: Scalar, Temporal: Constant},
	Horizon:                    {Relation: Point, Length: Scalar, Temporal: Constant},
	ModelCoordinates:           {Relation: Point, Length: Vector, Temporal: Constant},
	Coordinates:                {Relation: Point, Length: Vector, Temporal: TwoStep},
	Velocity:                   {Relation: Point, Length: Vector, Temporal: TwoStep},
	ForceDensity:               {Relation: Point, Length: Vector, Temporal: TwoStep},
	WeightedVolume:             {Relation: Point, Length: Scalar, Temporal: Constant},
	SurfaceCorrectionFactor:    {Relation: Point, Length: Scalar, Temporal: Constant},
	Dilatation:                 {Relation: Point, Length: Scalar, Temporal: TwoStep},
	Damage:                     {Relation: Point, Length: Scalar, Temporal: TwoStep},
	BondDamage:                 {Relation: Bond, Length: Scalar, Temporal: TwoStep},
	TemperatureChange:          {Relation: Point, Length: Scalar, Temporal: TwoStep},
	VonMisesStress:             {Relation: Point, Length: Scalar, Temporal: TwoStep},
	EquivalentPlasticStrain:    {Relation: Point, Length: Scalar, Temporal: TwoStep},
	CumulativeAdiabaticHeat:    {Relation: Point, Length: Scalar, Temporal: TwoStep},
	DeviatoricPlasticExtension: {Relation: Bond, Length: Scalar, Temporal: TwoStep},
	DeviatoricForceDensity:     {Relation: Bond, Length: Scalar, Temporal: TwoStep},
	DeviatoricBackExtension:    {Relation: Bond, Length: Scalar, Temporal: TwoStep},
	MicroPotential:             {Relation: Bond, Length: Scalar, Temporal: TwoStep},
	SpecularBondPosition:       {Relation: Bond, Length: Scalar, Temporal: Constant},
	VolumeRatio:                {Relation: Point, Length: Scalar, Temporal: Constant},
	RateOfDeformation:          {Relation: Point, Length: Tensor, Temporal: Constant},
	CauchyStress:               {Relation: Point, Length: Tensor, Temporal: TwoStep},
	StrainEnergyDensity:        {Relation: Point, Length: Scalar, Temporal: TwoStep},
}
