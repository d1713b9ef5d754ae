package jsast

// TokenKind identifies the lexical class of a Token. Grounded in the
// teacher's internal/lexer token-kind-as-int idiom.
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokIdent
	TokInt
	TokFloat
	TokString
	TokKeyword
	TokPunct
	TokComment
)

type Token struct {
	Kind  TokenKind
	Lexeme string
	Start  int
	End    int
	Line   int
	Column int
}

var keywords = map[string]bool{
	"var": true, "let": true, "const": true,
	"function": true, "return": true, "if": true, "else": true,
	"class": true, "new": true, "this": true, "static": true,
	"get": true, "set": true, "constructor": true,
	"true": true, "false": true, "null": true, "undefined": true,
}

func isKeyword(s string) bool { return keywords[s] }
