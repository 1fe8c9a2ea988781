// Package token implements the lexical analyzer for JSON text: a single
// left-to-right scan over code points producing a flat token sequence.
package token

// Kind identifies the lexical class of a token.
type Kind int

const (
	CurlyOpen Kind = iota //  {
	CurlyClose            //  }
	SquareOpen            //  [
	SquareClose           //  ]
	Colon                 //  :
	Comma                 //  ,
	String                //  raw text between quotes, escapes not decoded
	Number                //  raw text of the numeral
	True
	False
	Null
)

// Token is an atomic lexical unit. Text carries the raw span for String and
// Number tokens and is empty otherwise. Tokens are immutable once produced.
type Token struct {
	Kind Kind
	Text string
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case CurlyOpen:
		return "{"
	case CurlyClose:
		return "}"
	case SquareOpen:
		return "["
	case SquareClose:
		return "]"
	case Colon:
		return ":"
	case Comma:
		return ","
	case True:
		return "true"
	case False:
		return "false"
	case Null:
		return "null"
	default:
		return t.Text
	}
}
