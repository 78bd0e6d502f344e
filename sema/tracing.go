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
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	checker *Checker,
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

const (
	tracingPhasePrefix        = "phase."
	tracingConformanceCheck   = "conformance.check"
	tracingSynthesisPrefix    = "synthesize."
	tracingDeclarationKind    = "Declaration kind"
	tracingDeclarationName    = "Declaration name"
	tracingRequirementCount   = "Requirement count"
	tracingConformingType     = "Conforming type"
	tracingInterfaceType      = "Interface type"
	tracingSynthesisSucceeded = "Succeeded"
)

func (checker *Checker) tracingEnabled() bool {
	return checker.Config.TracingEnabled &&
		checker.Config.OnRecordTrace != nil
}

func (checker *Checker) reportPhaseTrace(
	declaration ast.Declaration,
	state common.DeclCheckState,
	duration time.Duration,
) {
	checker.Config.OnRecordTrace(
		checker,
		tracingPhasePrefix+state.Name(),
		duration,
		[]attribute.KeyValue{
			attribute.String(tracingDeclarationKind, declaration.DeclarationKind().Name()),
			attribute.String(tracingDeclarationName, declaration.DeclarationIdentifier().Identifier),
		},
	)
}

func (checker *Checker) reportConformanceTrace(
	conformingType Type,
	interfaceType Type,
	requirementCount int,
	duration time.Duration,
) {
	checker.Config.OnRecordTrace(
		checker,
		tracingConformanceCheck,
		duration,
		[]attribute.KeyValue{
			attribute.String(tracingConformingType, typeString(conformingType)),
			attribute.String(tracingInterfaceType, typeString(interfaceType)),
			attribute.Int(tracingRequirementCount, requirementCount),
		},
	)
}

func (checker *Checker) reportSynthesisTrace(
	requirement ast.Declaration,
	succeeded bool,
	duration time.Duration,
) {
	checker.Config.OnRecordTrace(
		checker,
		tracingSynthesisPrefix+requirement.DeclarationKind().Name(),
		duration,
		[]attribute.KeyValue{
			attribute.String(tracingDeclarationName, requirement.DeclarationIdentifier().Identifier),
			attribute.Bool(tracingSynthesisSucceeded, succeeded),
		},
	)
}
