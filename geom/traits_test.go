// SPDX-License-Identifier: MIT

package geom_test

import (
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/traits"
)

type (
	v2 = geom.Vec2[float64]
	v3 = geom.Vec3[float64]
	v4 = geom.Vec4[float64]
	m3 = geom.Mat3[float64]
	m4 = geom.Mat4[float64]
)

// Compile-time capability checks: a failing line means a family lost a trait.
var (
	_ traits.Dot[float64, v3]                   = v3{}
	_ traits.Norm[float64, v3]                  = (*v3)(nil)
	_ traits.Cross[v3, v3]                      = v3{}
	_ traits.Cross[v2, geom.Vec1[float64]]      = v2{}
	_ traits.CrossMatrix[m3]                    = v3{}
	_ traits.CrossMatrix[v2]                    = v2{}
	_ traits.Outer[v3, m3]                      = v3{}
	_ traits.Absolute[v3]                       = v3{}
	_ traits.ScalarAdd[float64, v3]             = v3{}
	_ traits.ScalarSub[float64, v3]             = v3{}
	_ traits.Zero[v3]                           = v3{}
	_ traits.IndexableMut[float64]              = (*v3)(nil)
	_ traits.IterableMut[float64]               = (*v3)(nil)
	_ traits.IterableMut[int]                   = (*geom.Vec0[int])(nil)
	_ traits.IterableMut[float64]               = (*m3)(nil)
	_ traits.VecSource[float64, traits.D3]      = v3{}
	_ traits.VecBuilder[float64, traits.D3, v3] = v3{}
	_ traits.Translation[v3, v3]                = (*v3)(nil)
	_ traits.Translate[v3]                      = v3{}
	_ traits.Rotate[v3]                         = v3{}
	_ traits.Transform[v3]                      = v3{}
	_ traits.ToHomogeneous[v4]                  = v3{}
	_ traits.FromHomogeneous[v4, v3]            = v3{}
	_ traits.Basis[v3]                          = v3{}
	_ traits.UniformSphereSample[v3]            = v3{}
	_ traits.UniformSphereSample[v2]            = v2{}

	_ traits.Inv[m3]                            = (*m3)(nil)
	_ traits.Transpose[m3]                      = (*m3)(nil)
	_ traits.RMul[v3]                           = m3{}
	_ traits.LMul[v3]                           = m3{}
	_ traits.Mean[v3]                           = m3{}
	_ traits.Cov[m3]                            = m3{}
	_ traits.One[m3]                            = m3{}
	_ traits.Row[v3]                            = (*m3)(nil)
	_ traits.Col[v3]                            = (*m3)(nil)
	_ traits.MatSource[float64, traits.D3]      = m3{}
	_ traits.MatBuilder[float64, traits.D3, m3] = m3{}
	_ traits.ToHomogeneous[m4]                  = m3{}
	_ traits.FromHomogeneous[m4, m3]            = m3{}

	_ traits.Rotation[geom.Vec1[float64], geom.Rot2[float64]] = (*geom.Rot2[float64])(nil)
	_ traits.Rotation[v3, geom.Rot3[float64]]                 = (*geom.Rot3[float64])(nil)
	_ traits.Rotation[geom.Rot4[float64], geom.Rot4[float64]] = (*geom.Rot4[float64])(nil)
	_ traits.Rotate[v3]                                       = geom.Rot3[float64]{}
	_ traits.Transform[v3]                                    = geom.Rot3[float64]{}
	_ traits.RotationMatrix[m3]                               = geom.Rot3[float64]{}
	_ traits.AbsoluteRotate[v3]                               = geom.Rot3[float64]{}
	_ traits.Inv[geom.Rot3[float64]]                          = (*geom.Rot3[float64])(nil)
	_ traits.Transpose[geom.Rot3[float64]]                    = (*geom.Rot3[float64])(nil)
	_ traits.One[geom.Rot3[float64]]                          = geom.Rot3[float64]{}
	_ traits.ToHomogeneous[m4]                                = geom.Rot3[float64]{}

	_ traits.Translation[v3, geom.Iso3[float64]]                                 = (*geom.Iso3[float64])(nil)
	_ traits.Rotation[v3, geom.Iso3[float64]]                                    = (*geom.Iso3[float64])(nil)
	_ traits.RotationWithTranslation[v3, v3, geom.Iso3[float64]]                 = (*geom.Iso3[float64])(nil)
	_ traits.Transformation[geom.Iso3[float64], geom.Iso3[float64]]              = (*geom.Iso3[float64])(nil)
	_ traits.Transform[v3]                                                       = geom.Iso3[float64]{}
	_ traits.Inv[geom.Iso3[float64]]                                             = (*geom.Iso3[float64])(nil)
	_ traits.One[geom.Iso3[float64]]                                             = geom.Iso3[float64]{}
	_ traits.ToHomogeneous[m4]                                                   = geom.Iso3[float64]{}
	_ traits.FromHomogeneous[m4, geom.Iso3[float64]]                             = geom.Iso3[float64]{}
	_ traits.RotationWithTranslation[v2, geom.Vec1[float64], geom.Iso2[float64]] = (*geom.Iso2[float64])(nil)
	_ traits.RotationWithTranslation[v4, geom.Rot4[float64], geom.Iso4[float64]] = (*geom.Iso4[float64])(nil)
)
