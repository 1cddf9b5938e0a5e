package domain

import "fmt"

// Kind is the scalar type a schema element declares for its flag.
type Kind int

const (
	KindBoolean Kind = iota
	KindString
	KindInteger
	KindDouble
)

// Schema suffixes for each kind.
const (
	SuffixBoolean = ""
	SuffixString  = "*"
	SuffixInteger = "#"
	SuffixDouble  = "##"
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Suffix returns the schema suffix that declares this kind.
func (k Kind) Suffix() string {
	switch k {
	case KindString:
		return SuffixString
	case KindInteger:
		return SuffixInteger
	case KindDouble:
		return SuffixDouble
	default:
		return SuffixBoolean
	}
}

// KindForSuffix maps a schema element tail to its kind.
func KindForSuffix(suffix string) (Kind, bool) {
	switch suffix {
	case SuffixBoolean:
		return KindBoolean, true
	case SuffixString:
		return KindString, true
	case SuffixInteger:
		return KindInteger, true
	case SuffixDouble:
		return KindDouble, true
	default:
		return 0, false
	}
}

// TakesValue reports whether a flag of this kind consumes the next token.
func (k Kind) TakesValue() bool {
	return k != KindBoolean
}
