// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast defines the AST node types that the (out of scope) parser is
// assumed to deliver: an arena-allocated tree with byte-accurate spans. The
// engine (visitor, analyzer rules, rewriter rules, pattern DSL) operates
// exclusively over these types; nothing in this package parses source text.
//
// The node-kind tags returned by Kind() are the vocabulary the pattern DSL
// (internal/pattern) uses in its "node: Kind" match clauses, so renaming a
// Kind string is a breaking change to rule YAML files.
package ast

import "github.com/borisyanez/rustor-sub001/internal/span"

// Node is implemented by every statement and expression.
type Node interface {
	Span() span.Span
	Kind() string
}

// Stmt is implemented by every statement-level node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression-level node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of one file's AST: an ordered, arena-style list of
// top-level statements plus the file id they belong to (see internal/span).
type Program struct {
	File       int
	Statements []Stmt
}

func (p *Program) Span() span.Span {
	if len(p.Statements) == 0 {
		return span.Span{File: p.File}
	}
	return span.Span{
		File:  p.File,
		Start: p.Statements[0].Span().Start,
		End:   p.Statements[len(p.Statements)-1].Span().End,
	}
}
func (p *Program) Kind() string { return "Program" }

// base embeds the span shared by every node and is embedded by every
// concrete node type below.
type base struct {
	Sp span.Span
}

func (b base) Span() span.Span { return b.Sp }

// ---- Statements ----

type ExprStmt struct {
	base
	X Expr
}

func (*ExprStmt) stmtNode()     {}
func (*ExprStmt) Kind() string  { return "ExpressionStatement" }

type Block struct {
	base
	Stmts []Stmt
}

func (*Block) stmtNode()    {}
func (*Block) Kind() string { return "Block" }

type ElseIf struct {
	Cond Expr
	Then Stmt
}

type If struct {
	base
	Cond    Expr
	Then    Stmt
	ElseIfs []ElseIf
	Else    Stmt // nil if absent
}

func (*If) stmtNode()    {}
func (*If) Kind() string { return "If" }

type While struct {
	base
	Cond Expr
	Body Stmt
}

func (*While) stmtNode()    {}
func (*While) Kind() string { return "While" }

type DoWhile struct {
	base
	Body Stmt
	Cond Expr
}

func (*DoWhile) stmtNode()    {}
func (*DoWhile) Kind() string { return "DoWhile" }

type For struct {
	base
	Init, Cond, Loop []Expr
	Body             Stmt
}

func (*For) stmtNode()    {}
func (*For) Kind() string { return "For" }

type Foreach struct {
	base
	Expr     Expr
	KeyVar   Expr // nil if absent
	ValueVar Expr
	ByRef    bool
	Body     Stmt
}

func (*Foreach) stmtNode()    {}
func (*Foreach) Kind() string { return "Foreach" }

type SwitchCase struct {
	Cond Expr // nil for default:
	Body []Stmt
}

type Switch struct {
	base
	Cond  Expr
	Cases []SwitchCase
}

func (*Switch) stmtNode()    {}
func (*Switch) Kind() string { return "Switch" }

type CatchClause struct {
	Types []string
	Var   string // may be empty
	Body  []Stmt
}

type Try struct {
	base
	Body    []Stmt
	Catches []CatchClause
	Finally []Stmt // nil if absent
}

func (*Try) stmtNode()    {}
func (*Try) Kind() string { return "Try" }

type Return struct {
	base
	Value Expr // nil for bare "return;"
}

func (*Return) stmtNode()    {}
func (*Return) Kind() string { return "Return" }

type Throw struct {
	base
	Value Expr
}

func (*Throw) stmtNode()    {}
func (*Throw) Kind() string { return "Throw" }

type Break struct {
	base
	Level int // 1 if unspecified
}

func (*Break) stmtNode()    {}
func (*Break) Kind() string { return "Break" }

type Continue struct {
	base
	Level int
}

func (*Continue) stmtNode()    {}
func (*Continue) Kind() string { return "Continue" }

type Echo struct {
	base
	Values []Expr
}

func (*Echo) stmtNode()    {}
func (*Echo) Kind() string { return "Echo" }

// Exit models exit(...)/die(...) used as a statement; it is a terminator
// for dead-code analysis exactly like Return/Throw.
type Exit struct {
	base
	Value Expr // nil if argument-less
}

func (*Exit) stmtNode()    {}
func (*Exit) Kind() string { return "Exit" }

// Param describes one function/method/closure parameter.
type Param struct {
	Name       string
	Type       string // raw type-hint text, "" if untyped
	Default    Expr   // nil if no default
	ByRef      bool
	Variadic   bool
	Promoted   bool   // constructor property promotion
	Visibility string // "public"/"protected"/"private", "" if not promoted
	Readonly   bool
	Sp         span.Span
}

type FunctionDecl struct {
	base
	Name       string
	Params     []Param
	ReturnType string
	Body       *Block // nil for abstract/interface methods
}

func (*FunctionDecl) stmtNode()    {}
func (*FunctionDecl) Kind() string { return "FunctionDeclaration" }

// ClassMember is implemented by method/property/constant/trait-use
// declarations nested in a ClassLike.
type ClassMember interface {
	Node
	classMemberNode()
}

type MethodDecl struct {
	base
	Name       string
	Visibility string
	Static     bool
	Abstract   bool
	Final      bool
	Params     []Param
	ReturnType string
	Body       *Block // nil for abstract methods
	Attributes []string
}

func (*MethodDecl) classMemberNode() {}
func (*MethodDecl) Kind() string     { return "MethodDeclaration" }

type PropertyDecl struct {
	base
	Name       string
	Visibility string
	Static     bool
	Readonly   bool
	Attributes []string // raw "Name(args...)" source text of each attribute, outermost first
	Type       string   // raw type-hint text, "" if untyped
	Default    Expr     // nil if no initializer
	HasDefault bool
}

func (*PropertyDecl) classMemberNode() {}
func (*PropertyDecl) Kind() string     { return "PropertyDeclaration" }

type ClassConstDecl struct {
	base
	Name       string
	Value      Expr
	Visibility string
}

func (*ClassConstDecl) classMemberNode() {}
func (*ClassConstDecl) Kind() string     { return "ClassConstantDeclaration" }

type UseTraitDecl struct {
	base
	Traits []string
}

func (*UseTraitDecl) classMemberNode() {}
func (*UseTraitDecl) Kind() string     { return "UseTraitDeclaration" }

// ClassKind distinguishes class/interface/trait/enum declarations.
type ClassKind int

const (
	KindClass ClassKind = iota
	KindInterface
	KindTrait
	KindEnum
)

func (k ClassKind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindTrait:
		return "trait"
	case KindEnum:
		return "enum"
	default:
		return "class"
	}
}

type ClassLike struct {
	base
	ClassKind  ClassKind
	Name       string
	Parent     string   // empty if none
	Interfaces []string // "implements" (classes) or "extends" (interfaces, multiple)
	Members    []ClassMember
	Abstract   bool
	Final      bool
}

func (*ClassLike) stmtNode()    {}
func (*ClassLike) Kind() string { return "ClassLikeDeclaration" }

type NamespaceDecl struct {
	base
	Name  string
	Body  []Stmt // implicit (rest of file) or brace-delimited
}

func (*NamespaceDecl) stmtNode()    {}
func (*NamespaceDecl) Kind() string { return "Namespace" }

// UseDecl models a `use Foo\Bar as Baz;` import statement, the source of
// the per-file alias map (spec.md §4.3).
type UseDecl struct {
	base
	Path  string
	Alias string // resolved short name; equals last path segment if no "as"
}

func (*UseDecl) stmtNode()    {}
func (*UseDecl) Kind() string { return "UseDeclaration" }

// ConstDeclStmt models a global-scope `const NAME = value;` declaration.
type ConstDeclStmt struct {
	base
	Name  string
	Value Expr
}

func (*ConstDeclStmt) stmtNode()    {}
func (*ConstDeclStmt) Kind() string { return "ConstDeclaration" }

// ---- Expressions ----

type Ident struct {
	base
	Name string
}

func (*Ident) exprNode()  {}
func (*Ident) Kind() string { return "Identifier" }

type Variable struct {
	base
	Name string // without leading '$'
}

func (*Variable) exprNode()  {}
func (*Variable) Kind() string { return "Variable" }

type LiteralInt struct {
	base
	Value int64
}

func (*LiteralInt) exprNode()  {}
func (*LiteralInt) Kind() string { return "LiteralInt" }

type LiteralFloat struct {
	base
	Value float64
}

func (*LiteralFloat) exprNode()  {}
func (*LiteralFloat) Kind() string { return "LiteralFloat" }

type LiteralString struct {
	base
	Value string
}

func (*LiteralString) exprNode()  {}
func (*LiteralString) Kind() string { return "LiteralString" }

type LiteralBool struct {
	base
	Value bool
}

func (l *LiteralBool) exprNode() {}
func (l *LiteralBool) Kind() string {
	if l.Value {
		return "LiteralTrue"
	}
	return "LiteralFalse"
}

type LiteralNull struct{ base }

func (*LiteralNull) exprNode()  {}
func (*LiteralNull) Kind() string { return "LiteralNull" }

type ArrayItem struct {
	Key    Expr // nil for list-style items
	Value  Expr
	ByRef  bool
	Spread bool
}

type ArrayExpr struct {
	base
	Items []ArrayItem
}

func (*ArrayExpr) exprNode()  {}
func (*ArrayExpr) Kind() string { return "Array" }

type ArrayAccess struct {
	base
	Expr  Expr
	Index Expr // nil for the `$a[] = ...` append form
}

func (*ArrayAccess) exprNode()  {}
func (*ArrayAccess) Kind() string { return "ArrayAccess" }

type BinaryOp struct {
	base
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryOp) exprNode()  {}
func (*BinaryOp) Kind() string { return "BinaryOp" }

type UnaryOp struct {
	base
	Op      string
	Operand Expr
	Prefix  bool
}

func (*UnaryOp) exprNode()  {}
func (*UnaryOp) Kind() string { return "UnaryOp" }

type Assign struct {
	base
	Op     string // "=", "+=", "-=", ...
	Target Expr
	Value  Expr
}

func (*Assign) exprNode()  {}
func (*Assign) Kind() string { return "Assign" }

type Ternary struct {
	base
	Cond Expr
	Then Expr // nil for the elvis operator `$a ?: $b`
	Else Expr
}

func (*Ternary) exprNode()  {}
func (*Ternary) Kind() string { return "Ternary" }

type NullCoalesce struct {
	base
	Left  Expr
	Right Expr
}

func (*NullCoalesce) exprNode()  {}
func (*NullCoalesce) Kind() string { return "NullCoalesce" }

type Arg struct {
	Name   string // named-argument name, "" if positional
	Value  Expr
	Spread bool
}

type FuncCall struct {
	base
	Name     string // static callee name; "" when Callee is set (dynamic call)
	Callee   Expr   // non-nil for dynamic calls such as $fn(...)
	Args     []Arg
}

func (*FuncCall) exprNode()  {}
func (*FuncCall) Kind() string { return "FuncCall" }

type MethodCall struct {
	base
	Target Expr
	Name   string
	Args   []Arg
}

func (*MethodCall) exprNode()  {}
func (*MethodCall) Kind() string { return "MethodCall" }

type StaticCall struct {
	base
	Class string
	Name  string
	Args  []Arg
}

func (*StaticCall) exprNode()  {}
func (*StaticCall) Kind() string { return "StaticCall" }

type PropertyFetch struct {
	base
	Target Expr
	Name   string
}

func (*PropertyFetch) exprNode()  {}
func (*PropertyFetch) Kind() string { return "PropertyFetch" }

type StaticPropertyFetch struct {
	base
	Class string
	Name  string
}

func (*StaticPropertyFetch) exprNode()  {}
func (*StaticPropertyFetch) Kind() string { return "StaticPropertyFetch" }

type ClassConstFetch struct {
	base
	Class string
	Name  string
}

func (*ClassConstFetch) exprNode()  {}
func (*ClassConstFetch) Kind() string { return "ClassConstFetch" }

type New struct {
	base
	Class string
	Args  []Arg
}

func (*New) exprNode()  {}
func (*New) Kind() string { return "New" }

type ClosureUse struct {
	Name  string
	ByRef bool
}

type Closure struct {
	base
	Params []Param
	Uses   []ClosureUse
	Body   *Block
	Static bool
}

func (*Closure) exprNode()  {}
func (*Closure) Kind() string { return "Closure" }

type ArrowFunction struct {
	base
	Params []Param
	Body   Expr
	Static bool
}

func (*ArrowFunction) exprNode()  {}
func (*ArrowFunction) Kind() string { return "ArrowFunction" }

type Instanceof struct {
	base
	Expr  Expr
	Class string
}

func (*Instanceof) exprNode()  {}
func (*Instanceof) Kind() string { return "Instanceof" }

type Isset struct {
	base
	Vars []Expr
}

func (*Isset) exprNode()  {}
func (*Isset) Kind() string { return "Isset" }

type Empty struct {
	base
	Expr Expr
}

func (*Empty) exprNode()  {}
func (*Empty) Kind() string { return "Empty" }

type Cast struct {
	base
	Type string
	Expr Expr
}

func (*Cast) exprNode()  {}
func (*Cast) Kind() string { return "Cast" }

type BooleanNot struct {
	base
	Expr Expr
}

func (*BooleanNot) exprNode()  {}
func (*BooleanNot) Kind() string { return "BooleanNot" }
