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

package sema

import (
	"strconv"
	"strings"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/errors"
)

// Val is a value which can be the argument of a substitution:
// a type, an integer constant, or a subtype witness.
type Val interface {
	isVal()
	String() string
	// IsResolved returns false if the value depends on types
	// which have not been resolved yet.
	IsResolved() bool
	// Key returns the canonical key of the value.
	// Two values are equal if and only if their keys are equal.
	Key() string
}

// Type is a value which denotes a type.
type Type interface {
	Val
	isType()
}

func valKey(val Val) string {
	if val == nil {
		return "?"
	}
	return val.Key()
}

// ValsEqual returns true if the given values are structurally equal.
func ValsEqual(a, b Val) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	return a.Key() == b.Key()
}

// TypesEqual returns true if the given types are structurally equal.
func TypesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return ValsEqual(a, b)
}

// PrimitiveType

type PrimitiveType uint8

const (
	VoidType PrimitiveType = iota
	IntType
	FloatType
	BoolType
)

const primitiveTypeCount = BoolType + 1

var _ Type = VoidType

func (PrimitiveType) isVal()  {}
func (PrimitiveType) isType() {}

func (t PrimitiveType) Name() string {
	switch t {
	case VoidType:
		return "void"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case BoolType:
		return "bool"
	}

	panic(errors.NewUnreachableError())
}

func (t PrimitiveType) String() string {
	return t.Name()
}

func (PrimitiveType) IsResolved() bool {
	return true
}

func (t PrimitiveType) Key() string {
	return t.Name()
}

// IsNumeric returns true for int and float
func (t PrimitiveType) IsNumeric() bool {
	return t == IntType || t == FloatType
}

// PrimitiveTypeFromName returns the primitive type with the given name, if any.
func PrimitiveTypeFromName(name string) (PrimitiveType, bool) {
	for t := PrimitiveType(0); t < primitiveTypeCount; t++ {
		if t.Name() == name {
			return t, true
		}
	}
	return 0, false
}

// ErrorType is the type of erroneous declarations and expressions.
// It is compatible with every type, so that errors do not cascade.
var ErrorType Type = &errorType{}

type errorType struct{}

func (*errorType) isVal()  {}
func (*errorType) isType() {}

func (*errorType) String() string {
	return "<<error type>>"
}

func (*errorType) IsResolved() bool {
	return true
}

func (*errorType) Key() string {
	return "error"
}

func isErrorType(ty Type) bool {
	return ty == ErrorType
}

// DeclRefType is the type of a declared type, e.g. a struct,
// seen through the substitutions of the reference.
type DeclRefType struct {
	DeclRef DeclRef
}

var _ Type = &DeclRefType{}

func NewDeclRefType(declRef DeclRef) *DeclRefType {
	return &DeclRefType{
		DeclRef: declRef,
	}
}

func (*DeclRefType) isVal()  {}
func (*DeclRefType) isType() {}

func (t *DeclRefType) String() string {
	return t.DeclRef.String()
}

func (t *DeclRefType) IsResolved() bool {
	return t.DeclRef.IsResolved()
}

func (t *DeclRefType) Key() string {
	return "D(" + t.DeclRef.Key() + ")"
}

// ThisType is the abstract type which implements an interface,
// i.e. the meaning of `This` inside the interface.
type ThisType struct {
	Interface DeclRef
}

var _ Type = &ThisType{}

func (*ThisType) isVal()  {}
func (*ThisType) isType() {}

func (t *ThisType) String() string {
	return "This"
}

func (t *ThisType) IsResolved() bool {
	return t.Interface.IsResolved()
}

func (t *ThisType) Key() string {
	return "This(" + t.Interface.Key() + ")"
}

// ConstantIntVal is an integer constant, e.g. a generic argument.
type ConstantIntVal struct {
	Value int64
}

var _ Val = &ConstantIntVal{}

func (*ConstantIntVal) isVal() {}

func (v *ConstantIntVal) String() string {
	return strconv.FormatInt(v.Value, 10)
}

func (*ConstantIntVal) IsResolved() bool {
	return true
}

func (v *ConstantIntVal) Key() string {
	return "I" + strconv.FormatInt(v.Value, 10)
}

// ConstantBoolVal is a boolean constant.
type ConstantBoolVal struct {
	Value bool
}

var _ Val = &ConstantBoolVal{}

func (*ConstantBoolVal) isVal() {}

func (v *ConstantBoolVal) String() string {
	return strconv.FormatBool(v.Value)
}

func (*ConstantBoolVal) IsResolved() bool {
	return true
}

func (v *ConstantBoolVal) Key() string {
	return "B" + strconv.FormatBool(v.Value)
}

// GenericParamIntVal is the value of a generic value parameter,
// e.g. the `N` in `__generic<let N : int>`.
type GenericParamIntVal struct {
	Parameter DeclRef
}

var _ Val = &GenericParamIntVal{}

func (*GenericParamIntVal) isVal() {}

func (v *GenericParamIntVal) String() string {
	return v.Parameter.Name()
}

func (v *GenericParamIntVal) IsResolved() bool {
	return v.Parameter.IsResolved()
}

func (v *GenericParamIntVal) Key() string {
	return "P(" + v.Parameter.Key() + ")"
}

// SubtypeWitness proves that a type is a subtype of another type.
type SubtypeWitness interface {
	Val
	SubType() Type
	SupType() Type
}

// DeclaredSubtypeWitness proves a subtype relationship by pointing at the declaration
// which establishes it: an inheritance clause, a generic constraint,
// or a constraint of an associated type.
type DeclaredSubtypeWitness struct {
	Sub     Type
	Sup     Type
	DeclRef DeclRef
}

var _ SubtypeWitness = &DeclaredSubtypeWitness{}

func (*DeclaredSubtypeWitness) isVal() {}

func (w *DeclaredSubtypeWitness) SubType() Type {
	return w.Sub
}

func (w *DeclaredSubtypeWitness) SupType() Type {
	return w.Sup
}

func (w *DeclaredSubtypeWitness) String() string {
	return valKey(w.Sub) + " : " + valKey(w.Sup)
}

// IsResolved returns false while the types of the declaration are not known yet,
// e.g. when the header of a generic constraint has not been checked.
func (w *DeclaredSubtypeWitness) IsResolved() bool {
	return w.Sub != nil &&
		w.Sup != nil &&
		w.Sub.IsResolved() &&
		w.Sup.IsResolved() &&
		w.DeclRef.IsResolved()
}

func (w *DeclaredSubtypeWitness) Key() string {
	return "W(" + valKey(w.Sub) + "<:" + valKey(w.Sup) + "@" + w.DeclRef.Key() + ")"
}

// TransitiveSubtypeWitness proves `Sub <: Sup` from `Sub <: Mid` and `Mid <: Sup`.
type TransitiveSubtypeWitness struct {
	SubToMid SubtypeWitness
	MidToSup SubtypeWitness
}

var _ SubtypeWitness = &TransitiveSubtypeWitness{}

func (*TransitiveSubtypeWitness) isVal() {}

func (w *TransitiveSubtypeWitness) SubType() Type {
	return w.SubToMid.SubType()
}

func (w *TransitiveSubtypeWitness) SupType() Type {
	return w.MidToSup.SupType()
}

func (w *TransitiveSubtypeWitness) String() string {
	return valKey(w.SubType()) + " : " + valKey(w.SupType())
}

func (w *TransitiveSubtypeWitness) IsResolved() bool {
	return w.SubToMid.IsResolved() && w.MidToSup.IsResolved()
}

func (w *TransitiveSubtypeWitness) Key() string {
	return "TW(" + w.SubToMid.Key() + ";" + w.MidToSup.Key() + ")"
}

// TypeEqualityWitness proves that a type is a subtype of itself.
type TypeEqualityWitness struct {
	Type Type
}

var _ SubtypeWitness = &TypeEqualityWitness{}

func (*TypeEqualityWitness) isVal() {}

func (w *TypeEqualityWitness) SubType() Type {
	return w.Type
}

func (w *TypeEqualityWitness) SupType() Type {
	return w.Type
}

func (w *TypeEqualityWitness) String() string {
	return valKey(w.Type)
}

func (w *TypeEqualityWitness) IsResolved() bool {
	return w.Type.IsResolved()
}

func (w *TypeEqualityWitness) Key() string {
	return "EQ(" + valKey(w.Type) + ")"
}

// declarationOfType returns the declaration of the given declared type, if any.
func declarationOfType(ty Type) (ast.Declaration, bool) {
	declRefType, ok := ty.(*DeclRefType)
	if !ok {
		return nil, false
	}
	return declRefType.DeclRef.Declaration, true
}

func isInterfaceType(ty Type) bool {
	declaration, ok := declarationOfType(ty)
	if !ok {
		return false
	}
	_, ok = declaration.(*ast.InterfaceDeclaration)
	return ok
}

func isStructType(ty Type) bool {
	declaration, ok := declarationOfType(ty)
	if !ok {
		return false
	}
	_, ok = declaration.(*ast.StructDeclaration)
	return ok
}

func joinVals(vals []Val) string {
	var sb strings.Builder
	for i, val := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		if val == nil {
			sb.WriteByte('?')
			continue
		}
		sb.WriteString(val.String())
	}
	return sb.String()
}
