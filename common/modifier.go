/*
 * declcheck - Declaration checking for a language with generics and interfaces
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"strings"

	"github.com/SaveTheRbtz/mph"
	"github.com/bits-and-blooms/bitset"

	"github.com/onflow/declcheck/errors"
)

//go:generate stringer -type=Modifier

type Modifier uint

const (
	ModifierStatic Modifier = iota
	ModifierConst
	ModifierMutating
	ModifierNonmutating
	ModifierOut
	ModifierRef
	ModifierPrefix
	ModifierPostfix
	ModifierTransparent
	ModifierTargetIntrinsic
	ModifierSpecializedForTarget
)

const modifierCount = ModifierSpecializedForTarget + 1

func (m Modifier) Keyword() string {
	switch m {
	case ModifierStatic:
		return "static"
	case ModifierConst:
		return "const"
	case ModifierMutating:
		return "mutating"
	case ModifierNonmutating:
		return "nonmutating"
	case ModifierOut:
		return "out"
	case ModifierRef:
		return "ref"
	case ModifierPrefix:
		return "prefix"
	case ModifierPostfix:
		return "postfix"
	case ModifierTransparent:
		return "__transparent"
	case ModifierTargetIntrinsic:
		return "__target_intrinsic"
	case ModifierSpecializedForTarget:
		return "__specialized_for_target"
	}

	panic(errors.NewUnreachableError())
}

// HasArgument returns true if the modifier is followed by a parenthesized target name.
func (m Modifier) HasArgument() bool {
	switch m {
	case ModifierTargetIntrinsic,
		ModifierSpecializedForTarget:
		return true
	default:
		return false
	}
}

var modifierKeywords = func() []string {
	keywords := make([]string, 0, modifierCount)
	for m := Modifier(0); m < modifierCount; m++ {
		keywords = append(keywords, m.Keyword())
	}
	return keywords
}()

var modifierKeywordsTable = mph.Build(modifierKeywords)

// ModifierFromKeyword returns the modifier spelled by the given keyword, if any.
func ModifierFromKeyword(keyword string) (Modifier, bool) {
	index, ok := modifierKeywordsTable.Lookup(keyword)
	if !ok {
		return 0, false
	}
	return Modifier(index), true
}

// ModifierSet is a set of modifiers, one bit per modifier.
type ModifierSet struct {
	bits *bitset.BitSet
}

func NewModifierSet(modifiers ...Modifier) ModifierSet {
	set := ModifierSet{
		bits: bitset.New(uint(modifierCount)),
	}
	for _, modifier := range modifiers {
		set.bits.Set(uint(modifier))
	}
	return set
}

func (s ModifierSet) Has(modifier Modifier) bool {
	if s.bits == nil {
		return false
	}
	return s.bits.Test(uint(modifier))
}

// With returns a copy of the set which additionally contains the given modifier.
func (s ModifierSet) With(modifier Modifier) ModifierSet {
	var bits *bitset.BitSet
	if s.bits == nil {
		bits = bitset.New(uint(modifierCount))
	} else {
		bits = s.bits.Clone()
	}
	bits.Set(uint(modifier))
	return ModifierSet{bits: bits}
}

// IsSuperSetOf returns true if every modifier of other is also in this set.
func (s ModifierSet) IsSuperSetOf(other ModifierSet) bool {
	if other.bits == nil || other.bits.None() {
		return true
	}
	if s.bits == nil {
		return false
	}
	return s.bits.IsSuperSet(other.bits)
}

func (s ModifierSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Modifiers returns the modifiers of the set, in declaration order of the constants.
func (s ModifierSet) Modifiers() []Modifier {
	if s.bits == nil {
		return nil
	}
	modifiers := make([]Modifier, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		modifiers = append(modifiers, Modifier(i))
	}
	return modifiers
}

func (s ModifierSet) String() string {
	var sb strings.Builder
	for i, modifier := range s.Modifiers() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(modifier.Keyword())
	}
	return sb.String()
}
