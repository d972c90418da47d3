package syntax

// Kind tags a CST node.
type Kind uint8

const (
	// Bogus wraps tokens the parser could not make sense of.
	Bogus Kind = iota
	// Unknown wraps a statement the parser does not model.
	Unknown

	// JSON
	JSONDocument
	JSONObject
	JSONMember
	JSONArray
	JSONString
	JSONNumber
	JSONKeyword

	// Script: statements
	Module
	VarDecl
	VarDeclarator
	ExprStmt
	ReturnStmt
	ThrowStmt
	IfStmt
	ElseClause
	Block
	FunctionDecl
	EmptyStmt

	// Script: functions
	ParamList
	Param

	// Script: expressions
	Name
	Literal
	TemplateLiteral
	CallExpr
	NewExpr
	ArgList
	MemberExpr
	IndexExpr
	BinaryExpr
	LogicalExpr
	UnaryExpr
	UpdateExpr
	ConditionalExpr
	AssignExpr
	SequenceExpr
	ArrowFunc
	FunctionExpr
	ParenExpr
	ArrayLit
	Hole
	ObjectLit
	Property
	SpreadElement

	kindCount
)

var kindNames = [kindCount]string{
	Bogus: "Bogus", Unknown: "Unknown",
	JSONDocument: "JSONDocument", JSONObject: "JSONObject", JSONMember: "JSONMember", JSONArray: "JSONArray",
	JSONString: "JSONString", JSONNumber: "JSONNumber", JSONKeyword: "JSONKeyword",
	Module: "Module", VarDecl: "VarDecl", VarDeclarator: "VarDeclarator", ExprStmt: "ExprStmt",
	ReturnStmt: "ReturnStmt", ThrowStmt: "ThrowStmt", IfStmt: "IfStmt", ElseClause: "ElseClause",
	Block: "Block", FunctionDecl: "FunctionDecl", EmptyStmt: "EmptyStmt",
	ParamList: "ParamList", Param: "Param",
	Name: "Name", Literal: "Literal", TemplateLiteral: "TemplateLiteral", CallExpr: "CallExpr",
	NewExpr: "NewExpr", ArgList: "ArgList", MemberExpr: "MemberExpr", IndexExpr: "IndexExpr",
	BinaryExpr: "BinaryExpr", LogicalExpr: "LogicalExpr", UnaryExpr: "UnaryExpr", UpdateExpr: "UpdateExpr",
	ConditionalExpr: "ConditionalExpr", AssignExpr: "AssignExpr", SequenceExpr: "SequenceExpr",
	ArrowFunc: "ArrowFunc", FunctionExpr: "FunctionExpr", ParenExpr: "ParenExpr", ArrayLit: "ArrayLit",
	Hole: "Hole", ObjectLit: "ObjectLit", Property: "Property", SpreadElement: "SpreadElement",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsStatement reports whether nodes of this kind appear in statement lists.
func (k Kind) IsStatement() bool {
	switch k {
	case Unknown, VarDecl, ExprStmt, ReturnStmt, ThrowStmt, IfStmt, Block, FunctionDecl, EmptyStmt:
		return true
	}
	return false
}
