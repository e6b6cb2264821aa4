package fieldfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// FieldLexer defines the lexical structure for .field profile files:
// brace-delimited blocks of key/value pairs with # comments.
var FieldLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "KwProfile", Pattern: `\bprofile\b`},

	{Name: "Colon", Pattern: `:`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},

	// Identifiers come after keywords.
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
})
