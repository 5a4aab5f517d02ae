package lr

import (
	"fmt"
)

// Production identifies an applied grammar rule.  Productions are numbered
// from 1 in grammar order; the grammar report numbers the same rules from 0
// (rule 0 being the augmented start rule).
type Production int

const (
	NoProduction = Production(0)

	AcceptProgram                           = Production(1)
	ReduceAddStatementToProgram             = Production(2)
	ReduceAddFunctionToProgram              = Production(3)
	ReduceNilToProgram                      = Production(4)
	ReduceIfToStatement                     = Production(5)
	ReduceWhileToStatement                  = Production(6)
	ReduceDeclarationToStatement            = Production(7)
	ReduceInitializedDeclarationToStatement = Production(8)
	ReduceSimpleStatementToStatement        = Production(9)
	ReduceIntToType                         = Production(10)
	ReduceBooleanToType                     = Production(11)
	ReduceStringToType                      = Production(12)
	ReduceToFunction                        = Production(13)
	ReduceToFunctionHead                    = Production(14)
	ReduceToFunctionSignature               = Production(15)
	ReduceTypeToReturnType                  = Production(16)
	ReduceVoidToReturnType                  = Production(17)
	ReduceProperToParameters                = Production(18)
	ReduceVoidToParameters                  = Production(19)
	ReduceAddToMoreParameters               = Production(20)
	ReduceNilToMoreParameters               = Production(21)
	ReduceAddToBody                         = Production(22)
	ReduceNilToBody                         = Production(23)
	ReduceEqualToExpression                 = Production(24)
	ReduceSumToExpression                   = Production(25)
	ReduceAddToSum                          = Production(26)
	ReduceUnaryToSum                        = Production(27)
	ReduceNotToUnary                        = Production(28)
	ReduceOperandToUnary                    = Production(29)
	ReduceIdentifierToOperand               = Production(30)
	ReduceParenthesizedToOperand            = Production(31)
	ReduceCallToOperand                     = Production(32)
	ReduceIntegerLiteralToOperand           = Production(33)
	ReduceStringLiteralToOperand            = Production(34)
	ReduceAssignToSimpleStatement           = Production(35)
	ReduceAddAssignToSimpleStatement        = Production(36)
	ReduceCallToSimpleStatement             = Production(37)
	ReducePutToSimpleStatement              = Production(38)
	ReduceGetToSimpleStatement              = Production(39)
	ReduceReturnToSimpleStatement           = Production(40)
	ReduceProperToArguments                 = Production(41)
	ReduceNilToArguments                    = Production(42)
	ReduceAddToMoreArguments                = Production(43)
	ReduceNilToMoreArguments                = Production(44)
	ReduceExpressionToReturnValue           = Production(45)
	ReduceNilToReturnValue                  = Production(46)

	NumProductions = 46
)

// ProductionFromReportRule converts a grammar report rule number.
func ProductionFromReportRule(rule int) Production {
	return Production(rule + 1)
}

func (p Production) ReportRule() int {
	return int(p) - 1
}

func (p Production) String() string {
	switch p {
	case AcceptProgram:
		return "AcceptProgram"
	case ReduceAddStatementToProgram:
		return "AddStatementToProgram"
	case ReduceAddFunctionToProgram:
		return "AddFunctionToProgram"
	case ReduceNilToProgram:
		return "NilToProgram"
	case ReduceIfToStatement:
		return "IfToStatement"
	case ReduceWhileToStatement:
		return "WhileToStatement"
	case ReduceDeclarationToStatement:
		return "DeclarationToStatement"
	case ReduceInitializedDeclarationToStatement:
		return "InitializedDeclarationToStatement"
	case ReduceSimpleStatementToStatement:
		return "SimpleStatementToStatement"
	case ReduceIntToType:
		return "IntToType"
	case ReduceBooleanToType:
		return "BooleanToType"
	case ReduceStringToType:
		return "StringToType"
	case ReduceToFunction:
		return "ToFunction"
	case ReduceToFunctionHead:
		return "ToFunctionHead"
	case ReduceToFunctionSignature:
		return "ToFunctionSignature"
	case ReduceTypeToReturnType:
		return "TypeToReturnType"
	case ReduceVoidToReturnType:
		return "VoidToReturnType"
	case ReduceProperToParameters:
		return "ProperToParameters"
	case ReduceVoidToParameters:
		return "VoidToParameters"
	case ReduceAddToMoreParameters:
		return "AddToMoreParameters"
	case ReduceNilToMoreParameters:
		return "NilToMoreParameters"
	case ReduceAddToBody:
		return "AddToBody"
	case ReduceNilToBody:
		return "NilToBody"
	case ReduceEqualToExpression:
		return "EqualToExpression"
	case ReduceSumToExpression:
		return "SumToExpression"
	case ReduceAddToSum:
		return "AddToSum"
	case ReduceUnaryToSum:
		return "UnaryToSum"
	case ReduceNotToUnary:
		return "NotToUnary"
	case ReduceOperandToUnary:
		return "OperandToUnary"
	case ReduceIdentifierToOperand:
		return "IdentifierToOperand"
	case ReduceParenthesizedToOperand:
		return "ParenthesizedToOperand"
	case ReduceCallToOperand:
		return "CallToOperand"
	case ReduceIntegerLiteralToOperand:
		return "IntegerLiteralToOperand"
	case ReduceStringLiteralToOperand:
		return "StringLiteralToOperand"
	case ReduceAssignToSimpleStatement:
		return "AssignToSimpleStatement"
	case ReduceAddAssignToSimpleStatement:
		return "AddAssignToSimpleStatement"
	case ReduceCallToSimpleStatement:
		return "CallToSimpleStatement"
	case ReducePutToSimpleStatement:
		return "PutToSimpleStatement"
	case ReduceGetToSimpleStatement:
		return "GetToSimpleStatement"
	case ReduceReturnToSimpleStatement:
		return "ReturnToSimpleStatement"
	case ReduceProperToArguments:
		return "ProperToArguments"
	case ReduceNilToArguments:
		return "NilToArguments"
	case ReduceAddToMoreArguments:
		return "AddToMoreArguments"
	case ReduceNilToMoreArguments:
		return "NilToMoreArguments"
	case ReduceExpressionToReturnValue:
		return "ExpressionToReturnValue"
	case ReduceNilToReturnValue:
		return "NilToReturnValue"
	default:
		return fmt.Sprintf("?unknown production %d?", int(p))
	}
}
