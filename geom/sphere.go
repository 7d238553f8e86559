// SPDX-License-Identifier: MIT

package geom

import "math"

// Sample counts of the deterministic sphere samplings.
const (
	circleSamples = 32
	sphereSamples = 64
)

// SampleSphere calls f with the two unit vectors of the 0-sphere, −1 then +1.
// The receiver is ignored.
func (v Vec1[N]) SampleSphere(f func(Vec1[N]) bool) {
	if !f(Vec1[N]{-1}) {
		return
	}
	f(Vec1[N]{1})
}

// SampleSphere calls f with circleSamples unit vectors evenly spaced on the unit
// circle, starting at (1, 0) and turning counter-clockwise. The receiver is ignored.
func (v Vec2[N]) SampleSphere(f func(Vec2[N]) bool) {
	for i := 0; i < circleSamples; i++ {
		theta := 2 * math.Pi * float64(i) / circleSamples
		if !f(Vec2[N]{N(math.Cos(theta)), N(math.Sin(theta))}) {
			return
		}
	}
}

// SampleSphere calls f with the sphereSamples points of a Fibonacci lattice on
// the unit sphere. The receiver is ignored.
func (v Vec3[N]) SampleSphere(f func(Vec3[N]) bool) {
	for i := 0; i < sphereSamples; i++ {
		x, y, z := kFibonacciSphere(i, sphereSamples)
		if !f(Vec3[N]{N(x), N(y), N(z)}) {
			return
		}
	}
}
