package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the concrete syntax: functions, exists/equate/choice
// statements, naturals, lists, pairs, inl/inr, lambdas, and the ifz/
// match/case eliminators (spec §6, the external source-to-IR contract).
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Operator", `(=:=|<>|->|::|=|\\)`, nil},
		{"Punctuation", `[{}()\[\],.;:+]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
