package ast

// Visitor is the double-dispatch contract every AST node variant is
// reachable from (spec §9 "dynamic dispatch"). SymbolTableBuilder and
// TypeResolver each implement this interface once per pass.
type Visitor interface {
	VisitCompilationUnit(n *CompilationUnit)
	VisitUsingDirective(n *UsingDirective)
	VisitNamespaceDecl(n *NamespaceDecl)
	VisitTypeDecl(n *TypeDecl)
	VisitEnumDecl(n *EnumDecl)
	VisitEnumCaseDecl(n *EnumCaseDecl)
	VisitFunctionDecl(n *FunctionDecl)
	VisitConstructorDecl(n *ConstructorDecl)
	VisitParameterDecl(n *ParameterDecl)
	VisitVariableDecl(n *VariableDecl)
	VisitPropertyDecl(n *PropertyDecl)

	VisitBlockStmt(n *BlockStmt)
	VisitExpressionStmt(n *ExpressionStmt)
	VisitIfStmt(n *IfStmt)
	VisitWhileStmt(n *WhileStmt)
	VisitForStmt(n *ForStmt)
	VisitForInStmt(n *ForInStmt)
	VisitReturnStmt(n *ReturnStmt)
	VisitBreakStmt(n *BreakStmt)
	VisitContinueStmt(n *ContinueStmt)
	VisitEmptyStmt(n *EmptyStmt)

	VisitIntegerLiteral(n *IntegerLiteral)
	VisitFloatLiteral(n *FloatLiteral)
	VisitDoubleLiteral(n *DoubleLiteral)
	VisitBoolLiteral(n *BoolLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitCharLiteral(n *CharLiteral)
	VisitNameExpr(n *NameExpr)
	VisitBinaryExpr(n *BinaryExpr)
	VisitUnaryExpr(n *UnaryExpr)
	VisitAssignmentExpr(n *AssignmentExpr)
	VisitCallExpr(n *CallExpr)
	VisitMemberAccessExpr(n *MemberAccessExpr)
	VisitIndexerExpr(n *IndexerExpr)
	VisitParenExpr(n *ParenExpr)
	VisitNewExpr(n *NewExpr)
	VisitThisExpr(n *ThisExpr)
	VisitCastExpr(n *CastExpr)
	VisitConditionalExpr(n *ConditionalExpr)
	VisitRangeExpr(n *RangeExpr)
	VisitArrayLiteralExpr(n *ArrayLiteralExpr)
	VisitMatchExpr(n *MatchExpr)
	VisitTypedIdentifierExpr(n *TypedIdentifierExpr)

	VisitSimpleNameTypeExpr(n *SimpleNameTypeExpr)
	VisitQualifiedNameTypeExpr(n *QualifiedNameTypeExpr)
	VisitArrayTypeExpr(n *ArrayTypeExpr)
	VisitFunctionTypeExpr(n *FunctionTypeExpr)
	VisitGenericInstantiationTypeExpr(n *GenericInstantiationTypeExpr)

	VisitErrorNode(n *ErrorNode)
}

// BaseVisitor gives every Visit method a no-op body so a partial visitor
// (one that only cares about a handful of node kinds) can embed it instead
// of stubbing out the rest, the way the teacher's walker embeds a
// DefaultVisitor.
type BaseVisitor struct{}

func (BaseVisitor) VisitCompilationUnit(n *CompilationUnit)   {}
func (BaseVisitor) VisitUsingDirective(n *UsingDirective)     {}
func (BaseVisitor) VisitNamespaceDecl(n *NamespaceDecl)       {}
func (BaseVisitor) VisitTypeDecl(n *TypeDecl)                 {}
func (BaseVisitor) VisitEnumDecl(n *EnumDecl)                 {}
func (BaseVisitor) VisitEnumCaseDecl(n *EnumCaseDecl)         {}
func (BaseVisitor) VisitFunctionDecl(n *FunctionDecl)         {}
func (BaseVisitor) VisitConstructorDecl(n *ConstructorDecl)   {}
func (BaseVisitor) VisitParameterDecl(n *ParameterDecl)       {}
func (BaseVisitor) VisitVariableDecl(n *VariableDecl)         {}
func (BaseVisitor) VisitPropertyDecl(n *PropertyDecl)         {}

func (BaseVisitor) VisitBlockStmt(n *BlockStmt)             {}
func (BaseVisitor) VisitExpressionStmt(n *ExpressionStmt)   {}
func (BaseVisitor) VisitIfStmt(n *IfStmt)                   {}
func (BaseVisitor) VisitWhileStmt(n *WhileStmt)             {}
func (BaseVisitor) VisitForStmt(n *ForStmt)                 {}
func (BaseVisitor) VisitForInStmt(n *ForInStmt)             {}
func (BaseVisitor) VisitReturnStmt(n *ReturnStmt)           {}
func (BaseVisitor) VisitBreakStmt(n *BreakStmt)             {}
func (BaseVisitor) VisitContinueStmt(n *ContinueStmt)       {}
func (BaseVisitor) VisitEmptyStmt(n *EmptyStmt)             {}

func (BaseVisitor) VisitIntegerLiteral(n *IntegerLiteral)           {}
func (BaseVisitor) VisitFloatLiteral(n *FloatLiteral)               {}
func (BaseVisitor) VisitDoubleLiteral(n *DoubleLiteral)             {}
func (BaseVisitor) VisitBoolLiteral(n *BoolLiteral)                 {}
func (BaseVisitor) VisitStringLiteral(n *StringLiteral)             {}
func (BaseVisitor) VisitCharLiteral(n *CharLiteral)                 {}
func (BaseVisitor) VisitNameExpr(n *NameExpr)                       {}
func (BaseVisitor) VisitBinaryExpr(n *BinaryExpr)                   {}
func (BaseVisitor) VisitUnaryExpr(n *UnaryExpr)                     {}
func (BaseVisitor) VisitAssignmentExpr(n *AssignmentExpr)           {}
func (BaseVisitor) VisitCallExpr(n *CallExpr)                       {}
func (BaseVisitor) VisitMemberAccessExpr(n *MemberAccessExpr)       {}
func (BaseVisitor) VisitIndexerExpr(n *IndexerExpr)                 {}
func (BaseVisitor) VisitParenExpr(n *ParenExpr)                     {}
func (BaseVisitor) VisitNewExpr(n *NewExpr)                         {}
func (BaseVisitor) VisitThisExpr(n *ThisExpr)                       {}
func (BaseVisitor) VisitCastExpr(n *CastExpr)                       {}
func (BaseVisitor) VisitConditionalExpr(n *ConditionalExpr)         {}
func (BaseVisitor) VisitRangeExpr(n *RangeExpr)                     {}
func (BaseVisitor) VisitArrayLiteralExpr(n *ArrayLiteralExpr)       {}
func (BaseVisitor) VisitMatchExpr(n *MatchExpr)                     {}
func (BaseVisitor) VisitTypedIdentifierExpr(n *TypedIdentifierExpr) {}

func (BaseVisitor) VisitSimpleNameTypeExpr(n *SimpleNameTypeExpr)                 {}
func (BaseVisitor) VisitQualifiedNameTypeExpr(n *QualifiedNameTypeExpr)           {}
func (BaseVisitor) VisitArrayTypeExpr(n *ArrayTypeExpr)                           {}
func (BaseVisitor) VisitFunctionTypeExpr(n *FunctionTypeExpr)                     {}
func (BaseVisitor) VisitGenericInstantiationTypeExpr(n *GenericInstantiationTypeExpr) {}

func (BaseVisitor) VisitErrorNode(n *ErrorNode) {}
