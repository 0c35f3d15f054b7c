package diag

import "fmt"

// Code identifies the kind of error a Diagnostic reports, stable across
// releases so tooling can switch on it instead of matching message text.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexUnknownTokenStart Code = 1001

	// Syntax.
	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002

	// Name resolution.
	ResUnboundIdentifier Code = 3001
	ResDuplicateName     Code = 3002

	// Type checking.
	TypeMismatch          Code = 4001
	TypeExpectedFunction  Code = 4002
	TypeExpectedProduct   Code = 4003
	TypeNoSuchField       Code = 4004
	TypeMissingSignature  Code = 4005
	TypeAliasCycle        Code = 4006
	TypeLocalTypeVariable Code = 4007
	TypeDuplicateField    Code = 4008
	TypeCannotInferLambda Code = 4009
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "UNKNOWN"
	case LexUnknownTokenStart:
		return "LEX_UNKNOWN_TOKEN_START"
	case SynUnexpectedToken:
		return "SYN_UNEXPECTED_TOKEN"
	case SynUnexpectedEOF:
		return "SYN_UNEXPECTED_EOF"
	case ResUnboundIdentifier:
		return "RES_UNBOUND_IDENTIFIER"
	case ResDuplicateName:
		return "RES_DUPLICATE_NAME"
	case TypeMismatch:
		return "TYPE_MISMATCH"
	case TypeExpectedFunction:
		return "TYPE_EXPECTED_FUNCTION"
	case TypeExpectedProduct:
		return "TYPE_EXPECTED_PRODUCT"
	case TypeNoSuchField:
		return "TYPE_NO_SUCH_FIELD"
	case TypeMissingSignature:
		return "TYPE_MISSING_SIGNATURE"
	case TypeAliasCycle:
		return "TYPE_ALIAS_CYCLE"
	case TypeLocalTypeVariable:
		return "TYPE_LOCAL_TYPE_VARIABLE"
	case TypeDuplicateField:
		return "TYPE_DUPLICATE_FIELD"
	case TypeCannotInferLambda:
		return "TYPE_CANNOT_INFER_LAMBDA"
	default:
		return fmt.Sprintf("CODE_%d", uint16(c))
	}
}
