package parser

import "github.com/alecthomas/participle/v2/lexer"

// grammarPos captures participle's token position so convert.go can
// build ast.Position values without re-scanning.
type grammarPos struct {
	lexer.Position
}
