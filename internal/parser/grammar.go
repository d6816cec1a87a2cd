package parser

// grammarProgram is the participle parse tree for a whole source file:
// zero or more function declarations plus an optional top-level
// statement (spec §6's "top-level statement becomes main_comp").
type grammarProgram struct {
	Pos   grammarPos
	Items []*grammarItem `@@*`
}

type grammarItem struct {
	Pos  grammarPos
	Func *grammarFuncDecl `  @@`
	Main *grammarMainStmt `| @@`
}

// grammarFuncDecl: `fn name p1 .. pn = body.`
type grammarFuncDecl struct {
	Pos    grammarPos
	Name   string   `"fn" @Ident`
	Params []string `@Ident*`
	Body   *grammarStmt `"=" @@ "."`
}

type grammarMainStmt struct {
	Pos  grammarPos
	Stmt *grammarStmt `@@ "."`
}

// grammarStmt is the sequencing language: exists/equate/choice/return,
// or a bare expression (spec §8's example programs).
type grammarStmt struct {
	Pos    grammarPos
	Exists *grammarExists `  @@`
	Return *grammarReturn `| @@`
	Equate *grammarEquate `| @@`
	Choice *grammarChoice `| @@`
	Plain  *grammarExpr   `| @@`
}

type grammarExists struct {
	Pos  grammarPos
	Name string       `"exists" @Ident ":"`
	Type *grammarType `@@ "."`
	Body *grammarStmt `@@`
}

type grammarReturn struct {
	Pos   grammarPos
	Value *grammarExpr `"return" @@`
}

type grammarEquate struct {
	Pos  grammarPos
	Lhs  *grammarExpr `@@ "=:="`
	Rhs  *grammarExpr `@@`
	Body *grammarStmt `"." @@`
}

type grammarChoice struct {
	Pos   grammarPos
	First *grammarExpr   `@@`
	Rest  []*grammarExpr `( "<>" @@ )+`
}

// grammarExpr is left-associative application: Fn applied to each of
// Args in turn (spec §3's `App{op, arg}` is binary; currying is built
// by the converter).
type grammarExpr struct {
	Pos  grammarPos
	Fn   *grammarAtom   `@@`
	Args []*grammarAtom `@@*`
}

type grammarAtom struct {
	Pos   grammarPos
	Nat   *int64        `(  @Integer`
	List  *grammarList  ` | @@`
	Inl   *grammarAtom  ` | "inl" @@`
	Inr   *grammarAtom  ` | "inr" @@`
	Ifz   *grammarIfz   ` | @@`
	Match *grammarMatch ` | @@`
	Case  *grammarCase  ` | @@`
	Paren *grammarParen ` | "(" @@ ")"`
	Ident *string       ` | @Ident )`
}

type grammarList struct {
	Pos   grammarPos
	Elems []*grammarExpr `"[" ( @@ ( "," @@ )* )? "]"`
}

// grammarParen disambiguates the three things a parenthesized atom can
// be: a lambda, a pair, or a plain parenthesized expression.
type grammarParen struct {
	Pos    grammarPos
	Lambda *grammarLambda `  @@`
	Pair   *grammarPair   `| @@`
	Expr   *grammarExpr   `| @@`
}

type grammarLambda struct {
	Pos   grammarPos
	Param string       `"\\" @Ident "."`
	Body  *grammarStmt `@@`
}

type grammarPair struct {
	Pos      grammarPos
	Fst      *grammarExpr `@@ ","`
	Snd      *grammarExpr `@@`
}

type grammarIfz struct {
	Pos       grammarPos
	Scrutinee *grammarExpr `"ifz" @@ "{"`
	ZeroBody  *grammarStmt `"zero" "->" @@ ";"`
	PredName  string       `"succ" @Ident "->"`
	SuccBody  *grammarStmt `@@ "}"`
}

type grammarMatch struct {
	Pos       grammarPos
	Scrutinee *grammarExpr `"match" @@ "{"`
	NilBody   *grammarStmt `"nil" "->" @@ ";"`
	HeadName  string       `@Ident`
	TailName  string       `"::" @Ident "->"`
	ConsBody  *grammarStmt `@@ "}"`
}

type grammarCase struct {
	Pos       grammarPos
	Scrutinee *grammarExpr `"case" @@ "{"`
	LeftName  string       `"inl" @Ident "->"`
	LeftBody  *grammarStmt `@@ ";"`
	RightName string       `"inr" @Ident "->"`
	RightBody *grammarStmt `@@ "}"`
}

// grammarType is the first-order type surface (spec §3's ValueType).
type grammarType struct {
	Pos   grammarPos
	Nat   bool             `(  @"Nat"`
	List  *grammarType     ` | "List" @@`
	Paren *grammarParenType ` | "(" @@ ")" )`
}

type grammarParenType struct {
	Pos   grammarPos
	Fst   *grammarType `@@`
	IsSum bool         `( @"+" | "," )`
	Snd   *grammarType `@@`
}
