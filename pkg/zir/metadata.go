// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package zir

import (
	"fmt"
	"math/big"
)

// Metadata records what the range optimiser was able to prove about an
// unsigned integer expression.  A nil *Metadata on a UintExpr marks the
// expression as not yet resolved; once attached, metadata is never replaced
// by a looser bound.
type Metadata struct {
	// Max is a provable upper bound on the true (unreduced) value this
	// expression can take.  It is always the tightest bound derivable from
	// the bounds of the children.
	Max big.Int
	// ShouldReduce indicates whether the consumer of this expression must
	// apply a range reduction before using its value.
	ShouldReduce bool
}

// WithMax constructs metadata with a given (hand-specified) upper bound and
// no pending reduction.
func WithMax(max *big.Int) *Metadata {
	var meta Metadata
	//
	meta.Max.Set(max)
	//
	return &meta
}

// WithMax64 constructs metadata with a given (small) upper bound and no
// pending reduction.
func WithMax64(max uint64) *Metadata {
	var meta Metadata
	//
	meta.Max.SetUint64(max)
	//
	return &meta
}

// ExactValue constructs metadata for an expression whose value is known
// exactly, such as a literal.
func ExactValue(val uint64) *Metadata {
	return WithMax64(val)
}

// Reduce returns a copy of this metadata with the pending-reduction flag
// forced to a given value.  The bound itself is never changed.
func (p *Metadata) Reduce(flag bool) *Metadata {
	var meta Metadata
	//
	meta.Max.Set(&p.Max)
	meta.ShouldReduce = flag
	//
	return &meta
}

// BitWidth returns the number of bits required to represent the upper bound
// of this metadata.
func (p *Metadata) BitWidth() uint {
	return uint(p.Max.BitLen())
}

func (p *Metadata) String() string {
	return fmt.Sprintf("{max: %s, reduce: %t}", p.Max.String(), p.ShouldReduce)
}
