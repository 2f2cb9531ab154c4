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

import "strings"

// binarySeparator marks the boundary between the canonical portion of a
// variable name and a bit-index suffix (e.g. "x_b3" is bit 3 of "x").
const binarySeparator = "_b"

// Substitution maps canonical variable names to replacement values.  It is
// used when flattening bit-decomposed variables: a lookup for "bit N of x"
// resolves through the entry for "x" itself, with the bit suffix reattached
// to the result.  There is no per-bit storage.
type Substitution struct {
	mapping map[string]string
}

// NewSubstitution constructs an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{make(map[string]string)}
}

// Insert stores a value under the canonical portion of the given key,
// overwriting any prior value.  Any bit-index suffix on the key is ignored.
func (p *Substitution) Insert(key string, value string) {
	prefix, _ := splitKey(key)
	//
	p.mapping[prefix] = value
}

// Get resolves a key, reattaching any bit-index suffix to the stored value.
// The second result is false if the canonical portion of the key has no
// entry.
func (p *Substitution) Get(key string) (string, bool) {
	prefix, suffix := splitKey(key)
	//
	value, ok := p.mapping[prefix]
	//
	if !ok {
		return "", false
	} else if suffix != "" {
		return value + binarySeparator + suffix, true
	}
	//
	return value, true
}

// ContainsKey reports whether the canonical portion of the given key has an
// entry.
func (p *Substitution) ContainsKey(key string) bool {
	prefix, _ := splitKey(key)
	//
	_, ok := p.mapping[prefix]
	//
	return ok
}

func splitKey(key string) (string, string) {
	prefix, suffix, _ := strings.Cut(key, binarySeparator)
	//
	return prefix, suffix
}
