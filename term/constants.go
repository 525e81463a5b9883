/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package term

import (
	"math"
)

// Epsilon is the tolerance used to compare double constants
const Epsilon = 1e-10

// EqD reports whether two doubles are equal within Epsilon. NaN equals
// nothing, not even NaN.
func EqD(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < Epsilon
}

// wellKnown lists the literal constants the simplifier snaps to.
var wellKnown = []*Term{Zero, Half, One, Two, MinusOne}

// LookupConstD returns the well-known double literal equal to v within
// Epsilon, or nil. Named constants are handled by IsPi and IsE.
func LookupConstD(v float64) *Term {
	for _, c := range wellKnown {
		if EqD(c.value.Double(), v) {
			return c
		}
	}
	return nil
}

// IsPi reports whether v equals π within Epsilon
func IsPi(v float64) bool { return EqD(v, math.Pi) }

// IsE reports whether v equals e within Epsilon
func IsE(v float64) bool { return EqD(v, math.E) }
