package analyzer

import (
	"errors"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/wren/diagnostic"
	"github.com/pattyshack/wren/parser/lr"
	"github.com/pattyshack/wren/symtab"
	"github.com/pattyshack/wren/types"
)

type semanticAction func(*SemanticEngine) error

// One entry per production.
var semanticActions = map[lr.Production]semanticAction{
	lr.AcceptProgram:                           (*SemanticEngine).acceptProgram,
	lr.ReduceAddStatementToProgram:             (*SemanticEngine).discardStatement,
	lr.ReduceAddFunctionToProgram:              (*SemanticEngine).noop,
	lr.ReduceNilToProgram:                      (*SemanticEngine).noop,
	lr.ReduceIfToStatement:                     (*SemanticEngine).conditional,
	lr.ReduceWhileToStatement:                  (*SemanticEngine).conditional,
	lr.ReduceDeclarationToStatement:            (*SemanticEngine).declaration,
	lr.ReduceInitializedDeclarationToStatement: (*SemanticEngine).initializedDeclaration,
	lr.ReduceSimpleStatementToStatement:        (*SemanticEngine).noop,
	lr.ReduceIntToType:                         (*SemanticEngine).pushInt,
	lr.ReduceBooleanToType:                     (*SemanticEngine).pushBool,
	lr.ReduceStringToType:                      (*SemanticEngine).pushString,
	lr.ReduceToFunction:                        (*SemanticEngine).closeFunction,
	lr.ReduceToFunctionHead:                    (*SemanticEngine).closeParameters,
	lr.ReduceToFunctionSignature:               (*SemanticEngine).openFunction,
	lr.ReduceTypeToReturnType:                  (*SemanticEngine).noop,
	lr.ReduceVoidToReturnType:                  (*SemanticEngine).pushVoid,
	lr.ReduceProperToParameters:                (*SemanticEngine).parameter,
	lr.ReduceVoidToParameters:                  (*SemanticEngine).noop,
	lr.ReduceAddToMoreParameters:               (*SemanticEngine).parameter,
	lr.ReduceNilToMoreParameters:               (*SemanticEngine).noop,
	lr.ReduceAddToBody:                         (*SemanticEngine).statementSequence,
	lr.ReduceNilToBody:                         (*SemanticEngine).pushOk,
	lr.ReduceEqualToExpression:                 (*SemanticEngine).equal,
	lr.ReduceSumToExpression:                   (*SemanticEngine).noop,
	lr.ReduceAddToSum:                          (*SemanticEngine).add,
	lr.ReduceUnaryToSum:                        (*SemanticEngine).noop,
	lr.ReduceNotToUnary:                        (*SemanticEngine).not,
	lr.ReduceOperandToUnary:                    (*SemanticEngine).noop,
	lr.ReduceIdentifierToOperand:               (*SemanticEngine).identifier,
	lr.ReduceParenthesizedToOperand:            (*SemanticEngine).parenthesized,
	lr.ReduceCallToOperand:                     (*SemanticEngine).callExpression,
	lr.ReduceIntegerLiteralToOperand:           (*SemanticEngine).pushInt,
	lr.ReduceStringLiteralToOperand:            (*SemanticEngine).pushString,
	lr.ReduceAssignToSimpleStatement:           (*SemanticEngine).assignment,
	lr.ReduceAddAssignToSimpleStatement:        (*SemanticEngine).assignment,
	lr.ReduceCallToSimpleStatement:             (*SemanticEngine).callStatement,
	lr.ReducePutToSimpleStatement:              (*SemanticEngine).put,
	lr.ReduceGetToSimpleStatement:              (*SemanticEngine).get,
	lr.ReduceReturnToSimpleStatement:           (*SemanticEngine).markReturn,
	lr.ReduceProperToArguments:                 (*SemanticEngine).argument,
	lr.ReduceNilToArguments:                    (*SemanticEngine).noop,
	lr.ReduceAddToMoreArguments:                (*SemanticEngine).argument,
	lr.ReduceNilToMoreArguments:                (*SemanticEngine).noop,
	lr.ReduceExpressionToReturnValue:           (*SemanticEngine).noop,
	lr.ReduceNilToReturnValue:                  (*SemanticEngine).pushVoid,
}

// SemanticEngine type checks the program one applied production at a time.
// Each action pops its operands' types off the type stack and pushes the
// resulting type (Ok for statements).
type SemanticEngine struct {
	symbols *symtab.Manager
	pending *symtab.Pending

	typeStack []types.Type

	// Accumulated in reduction order, i.e., last to first.
	parameters []symtab.Parameter
	arguments  []types.Type

	// Per function.
	returnSeen        bool
	conditionalReturn types.Type

	// Location of the token that triggered the current production.
	loc parseutil.Location
}

func NewSemanticEngine(
	symbols *symtab.Manager,
	pending *symtab.Pending,
) *SemanticEngine {
	return &SemanticEngine{
		symbols: symbols,
		pending: pending,
	}
}

func (engine *SemanticEngine) TypeStackDepth() int {
	return len(engine.typeStack)
}

// Apply performs the semantic action of the production.  loc is the
// location of the lookahead token.
func (engine *SemanticEngine) Apply(
	production lr.Production,
	loc parseutil.Location,
) error {
	engine.loc = loc

	action, ok := semanticActions[production]
	if !ok {
		return engine.errorf(
			diagnostic.UnimplementedRule,
			"no semantic action for rule %d",
			int(production))
	}

	return action(engine)
}

func (engine *SemanticEngine) errorf(
	code diagnostic.Code,
	format string,
	args ...interface{},
) error {
	return diagnostic.New(code, engine.loc, format, args...)
}

func (engine *SemanticEngine) push(valType types.Type) {
	engine.typeStack = append(engine.typeStack, valType)
}

func (engine *SemanticEngine) pop() (types.Type, error) {
	if len(engine.typeStack) == 0 {
		return types.Undefined, engine.errorf(
			diagnostic.InvalidSemanticState,
			"type stack underflow")
	}

	top := engine.typeStack[len(engine.typeStack)-1]
	engine.typeStack = engine.typeStack[:len(engine.typeStack)-1]
	return top, nil
}

func (engine *SemanticEngine) pop2() (types.Type, types.Type, error) {
	second, err := engine.pop()
	if err != nil {
		return types.Undefined, types.Undefined, err
	}

	first, err := engine.pop()
	if err != nil {
		return types.Undefined, types.Undefined, err
	}

	return first, second, nil
}

func (engine *SemanticEngine) peek() (types.Type, error) {
	if len(engine.typeStack) == 0 {
		return types.Undefined, engine.errorf(
			diagnostic.InvalidSemanticState,
			"type stack underflow")
	}
	return engine.typeStack[len(engine.typeStack)-1], nil
}

func (engine *SemanticEngine) assignType(
	symbol *symtab.Symbol,
	valType types.Type,
) error {
	err := engine.symbols.AssignType(symbol, valType)
	if errors.Is(err, symtab.ErrAlreadyTyped) {
		return engine.errorf(
			diagnostic.RedeclaredVariable,
			"%s already declared as %s",
			symbol.Name,
			symbol.Type)
	}
	return err
}

// consumeUntyped returns the symbol being declared.  Running out of untyped
// symbols means the declared identifier already had a type.
func (engine *SemanticEngine) consumeUntyped() (*symtab.Symbol, error) {
	symbol, ok := engine.pending.Consume(engine.symbols.Parameters)
	if !ok {
		return nil, engine.errorf(diagnostic.RedeclaredVariable, "")
	}
	return symbol, nil
}

// recentSymbol pops the most recently seen identifier.  Identifiers used
// without a declaration are implicitly int.
func (engine *SemanticEngine) recentSymbol() (*symtab.Symbol, error) {
	symbol, ok := engine.pending.PopRecent()
	if !ok {
		return nil, engine.errorf(
			diagnostic.InvalidSemanticState,
			"no identifier available")
	}

	if !symbol.IsTyped() {
		engine.pending.Forget(symbol)
		err := engine.assignType(symbol, types.Int)
		if err != nil {
			return nil, err
		}
	}

	return symbol, nil
}

func (engine *SemanticEngine) noop() error {
	return nil
}

func (engine *SemanticEngine) pushOk() error {
	engine.push(types.Ok)
	return nil
}

func (engine *SemanticEngine) pushInt() error {
	engine.push(types.Int)
	return nil
}

func (engine *SemanticEngine) pushBool() error {
	engine.push(types.Bool)
	return nil
}

func (engine *SemanticEngine) pushString() error {
	engine.push(types.String)
	return nil
}

func (engine *SemanticEngine) pushVoid() error {
	engine.push(types.Void)
	return nil
}

func (engine *SemanticEngine) acceptProgram() error {
	if engine.symbols.Depth() != 1 {
		return engine.errorf(
			diagnostic.InvalidSemanticState,
			"function scope not closed")
	}

	engine.symbols.CloseScope()

	if len(engine.typeStack) != 0 {
		return engine.errorf(
			diagnostic.InvalidSemanticState,
			"%d unresolved types at end of program",
			len(engine.typeStack))
	}
	return nil
}

// Top level statements are checked independently.
func (engine *SemanticEngine) discardStatement() error {
	_, err := engine.pop()
	return err
}

func (engine *SemanticEngine) conditional() error {
	guard, body, err := engine.pop2()
	if err != nil {
		return err
	}

	if guard != types.Bool {
		return engine.errorf(
			diagnostic.BooleanExpected,
			"condition must be boolean, found %s",
			guard)
	}

	engine.conditionalReturn = body
	engine.push(types.Ok)
	return nil
}

func (engine *SemanticEngine) declaration() error {
	declared, err := engine.pop()
	if err != nil {
		return err
	}

	symbol, err := engine.consumeUntyped()
	if err != nil {
		return err
	}

	err = engine.assignType(symbol, declared)
	if err != nil {
		return err
	}

	engine.push(types.Ok)
	return nil
}

func (engine *SemanticEngine) initializedDeclaration() error {
	declared, initializer, err := engine.pop2()
	if err != nil {
		return err
	}

	if declared != initializer {
		return engine.errorf(
			diagnostic.TypeMismatch,
			"cannot initialize %s variable with %s",
			declared,
			initializer)
	}

	symbol, err := engine.consumeUntyped()
	if err != nil {
		return err
	}

	err = engine.assignType(symbol, declared)
	if err != nil {
		return err
	}

	engine.push(types.Ok)
	return nil
}

func (engine *SemanticEngine) openFunction() error {
	engine.symbols.OpenScope()
	engine.symbols.Parameters = true
	engine.returnSeen = false
	engine.conditionalReturn = types.Undefined

	returnType, err := engine.peek()
	if err != nil {
		return err
	}

	symbol, err := engine.consumeUntyped()
	if err != nil {
		return err
	}

	err = engine.symbols.AssignFunctionType(symbol, returnType)
	if errors.Is(err, symtab.ErrAlreadyTyped) {
		return engine.errorf(
			diagnostic.RedeclaredVariable,
			"%s already declared as %s",
			symbol.Name,
			symbol.Type)
	}
	return err
}

func (engine *SemanticEngine) parameter() error {
	paramType, err := engine.pop()
	if err != nil {
		return err
	}

	symbol, err := engine.consumeUntyped()
	if err != nil {
		return err
	}

	err = engine.assignType(symbol, paramType)
	if err != nil {
		return err
	}

	engine.parameters = append(
		engine.parameters,
		symtab.Parameter{
			Type: paramType,
			Mode: types.Value,
		})
	return nil
}

func (engine *SemanticEngine) closeParameters() error {
	function, ok := engine.pending.RecentFunction()
	if !ok {
		return engine.errorf(
			diagnostic.InvalidSemanticState,
			"function signature not found")
	}

	params := make([]symtab.Parameter, 0, len(engine.parameters))
	for idx := len(engine.parameters) - 1; idx >= 0; idx-- {
		params = append(params, engine.parameters[idx])
	}
	engine.parameters = nil

	if !function.Function.SetParameters(params) {
		return engine.errorf(
			diagnostic.InvalidSemanticState,
			"parameters of %s already set",
			function.Name)
	}

	engine.symbols.Parameters = false
	return nil
}

func (engine *SemanticEngine) closeFunction() error {
	declared, body, err := engine.pop2()
	if err != nil {
		return err
	}

	if declared != body &&
		!(declared == types.Void && body == types.Ok) &&
		engine.returnSeen &&
		declared != engine.conditionalReturn {

		return engine.errorf(
			diagnostic.ReturnTypeMismatch,
			"function returns %s, found %s",
			declared,
			body)
	}

	if engine.symbols.IsCurrentScopeGlobal() {
		return engine.errorf(
			diagnostic.InvalidSemanticState,
			"function scope not open")
	}

	engine.symbols.CloseScope()
	return nil
}

func (engine *SemanticEngine) statementSequence() error {
	first, rest, err := engine.pop2()
	if err != nil {
		return err
	}

	if first != types.Ok && rest != types.Ok {
		return engine.errorf(
			diagnostic.ReturnTypeMismatch,
			"conflicting return types %s and %s",
			first,
			rest)
	}

	if first != types.Ok {
		engine.push(first)
	} else {
		engine.push(rest)
	}
	return nil
}

func (engine *SemanticEngine) equal() error {
	left, right, err := engine.pop2()
	if err != nil {
		return err
	}

	if left != types.Int || right != types.Int {
		return engine.errorf(
			diagnostic.TypeMismatch,
			"== requires int operands, found %s and %s",
			left,
			right)
	}

	engine.push(types.Bool)
	return nil
}

func (engine *SemanticEngine) add() error {
	left, right, err := engine.pop2()
	if err != nil {
		return err
	}

	if left != types.Int || right != types.Int {
		return engine.errorf(
			diagnostic.TypeMismatch,
			"+ requires int operands, found %s and %s",
			left,
			right)
	}

	engine.push(types.Int)
	return nil
}

func (engine *SemanticEngine) not() error {
	operand, err := engine.pop()
	if err != nil {
		return err
	}

	if operand != types.Bool {
		return engine.errorf(
			diagnostic.IncompatibleType,
			"! requires a boolean operand, found %s",
			operand)
	}

	engine.push(types.Bool)
	return nil
}

func (engine *SemanticEngine) identifier() error {
	symbol, err := engine.recentSymbol()
	if err != nil {
		return err
	}

	engine.push(symbol.Type)
	return nil
}

func (engine *SemanticEngine) parenthesized() error {
	inner, err := engine.peek()
	if err != nil {
		return err
	}

	if !inner.IsValue() {
		return engine.errorf(
			diagnostic.IncompatibleType,
			"%s is not a value",
			inner)
	}
	return nil
}

func (engine *SemanticEngine) assignment() error {
	value, err := engine.pop()
	if err != nil {
		return err
	}

	symbol, err := engine.recentSymbol()
	if err != nil {
		return err
	}

	if symbol.Type != value {
		return engine.errorf(
			diagnostic.TypeMismatch,
			"cannot assign %s to %s variable %s",
			value,
			symbol.Type,
			symbol.Name)
	}

	engine.push(types.Ok)
	return nil
}

func (engine *SemanticEngine) put() error {
	value, err := engine.pop()
	if err != nil {
		return err
	}

	if value != types.Int && value != types.String {
		return engine.errorf(
			diagnostic.IncompatibleType,
			"put requires int or string, found %s",
			value)
	}

	engine.push(types.Ok)
	return nil
}

func (engine *SemanticEngine) get() error {
	symbol, err := engine.recentSymbol()
	if err != nil {
		return err
	}

	if symbol.Type != types.Int && symbol.Type != types.String {
		return engine.errorf(
			diagnostic.IncompatibleType,
			"get requires int or string variable, found %s",
			symbol.Type)
	}

	engine.push(types.Ok)
	return nil
}

// The returned value's type is already on the stack.
func (engine *SemanticEngine) markReturn() error {
	engine.returnSeen = true
	return nil
}

func (engine *SemanticEngine) argument() error {
	argType, err := engine.pop()
	if err != nil {
		return err
	}

	engine.arguments = append(engine.arguments, argType)
	return nil
}

// verifyCall matches the collected arguments against the most recently
// referenced function's parameters.
func (engine *SemanticEngine) verifyCall() (*symtab.Symbol, error) {
	args := make([]types.Type, 0, len(engine.arguments))
	for idx := len(engine.arguments) - 1; idx >= 0; idx-- {
		args = append(args, engine.arguments[idx])
	}
	engine.arguments = nil

	function, ok := engine.pending.RecentFunction()
	if !ok {
		return nil, engine.errorf(diagnostic.UndeclaredFunction, "")
	}

	params := function.Function.Parameters
	if len(params) != len(args) {
		return nil, engine.errorf(
			diagnostic.ParameterCountMismatch,
			"%s expects %d arguments, found %d",
			function.Name,
			len(params),
			len(args))
	}

	for idx, param := range params {
		if param.Type != args[idx] {
			return nil, engine.errorf(
				diagnostic.ParameterTypeMismatch,
				"argument %d of %s must be %s, found %s",
				idx,
				function.Name,
				param.Type,
				args[idx])
		}
	}

	return function, nil
}

func (engine *SemanticEngine) callExpression() error {
	function, err := engine.verifyCall()
	if err != nil {
		return err
	}

	engine.push(function.Function.ReturnType)
	return nil
}

func (engine *SemanticEngine) callStatement() error {
	_, err := engine.verifyCall()
	if err != nil {
		return err
	}

	engine.push(types.Ok)
	return nil
}
