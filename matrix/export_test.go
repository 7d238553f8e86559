// SPDX-License-Identifier: MIT

package matrix

// OptionsSnapshot exposes the resolved policy to the external tests.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// Raw returns the backing slice of m.
func (m *DMat[N]) Raw() []N { return m.data }
