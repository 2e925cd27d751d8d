// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interpreter provides functions to evaluate parsed expressions with
// the option to augment the evaluation with inputs and functions supplied at
// evaluation time.
package interpreter

import (
	"github.com/taichimaeda/cel/common/ast"
	"github.com/taichimaeda/cel/common/containers"
	"github.com/taichimaeda/cel/common/types"
)

// Interpreter generates a new Interpretable from a checked or unchecked expression.
type Interpreter interface {
	// NewInterpretable creates an Interpretable from a checked AST, applying the given
	// InterpretableDecorator values to the resulting plan.
	NewInterpretable(exprAST *ast.AST, decorators ...InterpretableDecorator) (Interpretable, error)

	// NewUncheckedInterpretable creates an Interpretable from a single parsed expression, applying
	// the given InterpretableDecorator values to the resulting plan.
	NewUncheckedInterpretable(expr ast.Expr, decorators ...InterpretableDecorator) (Interpretable, error)
}

type exprInterpreter struct {
	dispatcher  Dispatcher
	container   *containers.Container
	provider    types.Provider
	adapter     types.Adapter
	attrFactory AttributeFactory
}

// NewInterpreter builds an Interpreter from a Dispatcher, Container, TypeProvider, TypeAdapter,
// and AttributeFactory. Each of these pieces is reused across every Interpretable generated by
// the returned Interpreter.
func NewInterpreter(dispatcher Dispatcher,
	container *containers.Container,
	provider types.Provider,
	adapter types.Adapter,
	attrFactory AttributeFactory) Interpreter {
	return &exprInterpreter{
		dispatcher:  dispatcher,
		container:   container,
		provider:    provider,
		adapter:     adapter,
		attrFactory: attrFactory,
	}
}

func (i *exprInterpreter) NewUncheckedInterpretable(expr ast.Expr, decorators ...InterpretableDecorator) (Interpretable, error) {
	unchecked := ast.NewAST(expr, ast.NewSourceInfo(nil))
	p := newPlanner(i.dispatcher, i.provider, i.adapter, i.attrFactory, i.container, unchecked)
	p.decorators = append(p.decorators, decorators...)
	return p.Plan(expr)
}

func (i *exprInterpreter) NewInterpretable(exprAST *ast.AST, decorators ...InterpretableDecorator) (Interpretable, error) {
	p := newPlanner(i.dispatcher, i.provider, i.adapter, i.attrFactory, i.container, exprAST)
	p.decorators = append(p.decorators, decorators...)
	return p.Plan(exprAST.Expr())
}
