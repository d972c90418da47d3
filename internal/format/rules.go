package format

import (
	"maps"

	"quill/internal/syntax"
)

// defaultRules is the dispatch table. Bogus and Unknown have no entry and
// fall back to verbatim in Context.Node.
var defaultRules = map[syntax.Kind]Rule{
	syntax.JSONDocument: formatJSONDocument,
	syntax.JSONObject:   formatJSONObject,
	syntax.JSONMember:   formatJSONMember,
	syntax.JSONArray:    formatJSONArray,
	syntax.JSONString:   formatToken,
	syntax.JSONNumber:   formatToken,
	syntax.JSONKeyword:  formatToken,

	syntax.Module:        formatModule,
	syntax.VarDecl:       formatVarDecl,
	syntax.VarDeclarator: formatVarDeclarator,
	syntax.ExprStmt:      formatExprStmt,
	syntax.ReturnStmt:    formatReturn,
	syntax.ThrowStmt:     formatReturn,
	syntax.IfStmt:        formatIf,
	syntax.Block:         formatBlock,
	syntax.FunctionDecl:  formatFunction,
	syntax.EmptyStmt:     formatEmptyStmt,

	syntax.ParamList: formatParams,
	syntax.Param:     formatParam,

	syntax.Name:            formatToken,
	syntax.Literal:         formatLiteral,
	syntax.TemplateLiteral: formatToken,
	syntax.CallExpr:        formatCall,
	syntax.NewExpr:         formatNew,
	syntax.ArgList:         formatArgs,
	syntax.MemberExpr:      formatAccess,
	syntax.IndexExpr:       formatAccess,
	syntax.BinaryExpr:      formatBinary,
	syntax.LogicalExpr:     formatBinary,
	syntax.UnaryExpr:       formatUnary,
	syntax.UpdateExpr:      formatUpdate,
	syntax.ConditionalExpr: formatConditional,
	syntax.AssignExpr:      formatAssign,
	syntax.SequenceExpr:    formatSequence,
	syntax.ArrowFunc:       formatArrow,
	syntax.FunctionExpr:    formatFunction,
	syntax.ParenExpr:       formatParen,
	syntax.ArrayLit:        formatArray,
	syntax.Hole:            formatHole,
	syntax.ObjectLit:       formatObject,
	syntax.Property:        formatProperty,
	syntax.SpreadElement:   formatSpread,
}

// Rules returns a copy of the dispatch table; callers may change the copy
// and pass it to FormatWith.
func Rules() map[syntax.Kind]Rule {
	return maps.Clone(defaultRules)
}
