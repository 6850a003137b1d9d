/*
Package ast models the parts of a host program tree that literal rewriting
cares about.

The tree is a closed set of node variants: *CallExpr, *Ident, *StrLit and
*Generic. Every other node kind the host produces (statements, member
expressions, object literals, template literals, ...) is decoded as a *Generic,
which keeps its fields in their original order so that nested call expressions
remain reachable by Walk and the tree re-encodes without loss.

Trees travel to and from the host as JSON. Two dialects are understood:

	ESTree  acorn/espree/Babel style: Identifier.name, Literal or StringLiteral,
	        SpreadElement entries in CallExpression.arguments
	SWC     swc_ecma_ast serde style: Identifier.value, StringLiteral.raw,
	        {spread, expression} wrappers in CallExpression.arguments

A tree must be encoded with the dialect it was decoded with.
*/
package ast
