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
	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
)

// checkBases validates the inheritance clauses of types and extensions,
// and registers extensions with the declarations they extend.
func checkBases(ctx *checkingContext, declaration ast.Declaration) {
	switch declaration := declaration.(type) {
	case *ast.StructDeclaration:
		ctx.checkStructBases(declaration)

	case *ast.InterfaceDeclaration:
		ctx.forEachBase(declaration, func(_ int, inheritance *ast.InheritanceDeclaration, base Type) {
			if isInterfaceType(base) {
				return
			}
			ctx.report(&BaseOfInterfaceMustBeInterfaceError{
				Type:  base,
				Range: ast.NewRangeFromPositioned(inheritance),
			})
		})

	case *ast.EnumDeclaration:
		ctx.checkEnumBases(declaration)

	case *ast.ExtensionDeclaration:
		ctx.checkExtensionBases(declaration)

	case *ast.AssociatedTypeDeclaration:
		if _, ok := ctx.Arena.Parent(declaration).(*ast.InterfaceDeclaration); !ok {
			ctx.report(&AssociatedTypeOutsideInterfaceError{
				Name:  declaration.Identifier.Identifier,
				Range: ast.NewRangeFromPositioned(declaration.Identifier),
			})
		}
	}
}

// forEachBase resolves the inheritance clauses of the given container
// and calls f for each valid base type.
func (ctx *checkingContext) forEachBase(
	container ast.Declaration,
	f func(index int, inheritance *ast.InheritanceDeclaration, base Type),
) {
	for index, inheritance := range ast.Inheritances(container) {
		ctx.ensureDecl(inheritance, common.DeclCheckStateSignatureChecked)
		base := ctx.Elaboration.BaseType(inheritance)
		if base == nil || isErrorType(base) {
			continue
		}
		f(index, inheritance, base)
	}
}

func (ctx *checkingContext) checkStructBases(structDeclaration *ast.StructDeclaration) {
	ctx.forEachBase(structDeclaration, func(index int, inheritance *ast.InheritanceDeclaration, base Type) {
		errorRange := ast.NewRangeFromPositioned(inheritance)

		switch {
		case isStructType(base):
			if index != 0 {
				ctx.report(&StructBaseMustBeListedFirstError{
					Type:  base,
					Range: errorRange,
				})
			}

		case isInterfaceType(base):
			// conformance is checked later

		default:
			ctx.report(&BaseOfStructMustBeStructOrInterfaceError{
				Type:  base,
				Range: errorRange,
			})
		}
	})
}

// checkEnumBases validates the bases of an enum.
// A leading integer base is the tag type of the enum, which defaults to int.
func (ctx *checkingContext) checkEnumBases(enum *ast.EnumDeclaration) {
	var tagType Type = IntType

	ctx.forEachBase(enum, func(index int, inheritance *ast.InheritanceDeclaration, base Type) {
		errorRange := ast.NewRangeFromPositioned(inheritance)

		if base == IntType {
			if index != 0 {
				ctx.report(&EnumTagTypeMustBeListedFirstError{
					Type:  base,
					Range: errorRange,
				})
				return
			}
			tagType = base
			return
		}

		if !isInterfaceType(base) {
			ctx.report(&BaseOfEnumMustBeInterfaceError{
				Type:  base,
				Range: errorRange,
			})
		}
	})

	ctx.Elaboration.setEnumTagType(enum, tagType)
}

// checkExtensionBases validates the target and the bases of an extension,
// and registers it as a candidate for its target.
// Extensions of interfaces may only add inheritance clauses.
func (ctx *checkingContext) checkExtensionBases(extension *ast.ExtensionDeclaration) {
	targetType := ctx.Elaboration.ExtensionTargetType(extension)
	if targetType == nil || isErrorType(targetType) {
		return
	}

	target, ok := ctx.extensionTargetDeclaration(targetType)
	if !ok {
		ctx.report(&InvalidExtensionTargetError{
			Type:  targetType,
			Range: ast.NewRangeFromPositioned(extension.TargetType),
		})
		return
	}

	if _, ok := target.(*ast.InterfaceDeclaration); ok {
		for _, member := range extension.Members {
			if _, ok := member.(*ast.InheritanceDeclaration); ok {
				continue
			}
			ctx.report(&InvalidExtensionTargetError{
				Type:  targetType,
				Range: ast.NewRangeFromPositioned(member.DeclarationIdentifier()),
			})
		}
	}

	ctx.forEachBase(extension, func(_ int, inheritance *ast.InheritanceDeclaration, base Type) {
		if isInterfaceType(base) {
			return
		}
		ctx.report(&BaseOfExtensionMustBeInterfaceError{
			Type:  base,
			Range: ast.NewRangeFromPositioned(inheritance),
		})
	})

	ctx.registerCandidateExtension(target, extension)
}
