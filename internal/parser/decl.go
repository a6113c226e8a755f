package parser

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/token"
)

// parseCompilationUnit is the top-level production: a sequence of using
// directives, then namespace declarations and other top-level decls,
// synchronizing past malformed ones rather than aborting the whole file
// (spec §4.3.3).
func (p *Parser) parseCompilationUnit(filePath string) *ast.CompilationUnit {
	unit := &ast.CompilationUnit{FilePath: filePath}

	for p.check(token.KW_USING) {
		unit.Usings = append(unit.Usings, p.parseUsingDirective())
	}

	for !p.atEnd() {
		if p.check(token.KW_NAMESPACE) {
			ns := p.parseNamespaceDecl()
			unit.Namespaces = append(unit.Namespaces, ns)
			continue
		}
		d := p.parseTopLevelDecl()
		if d != nil {
			unit.Decls = append(unit.Decls, d)
		}
	}
	return unit
}

func (p *Parser) parseUsingDirective() *ast.UsingDirective {
	tok := p.current()
	p.advance() // using
	parts := p.parseQualifiedName()
	p.consume(token.SEMI, "after using directive")
	n := &ast.UsingDirective{Token: tok, QualifiedName: parts}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseQualifiedName() []string {
	var parts []string
	tok, ok := p.consume(token.IDENT, "in qualified name")
	if !ok {
		return parts
	}
	parts = append(parts, tok.Lexeme)
	for p.check(token.DOT) {
		p.advance()
		seg, ok := p.consume(token.IDENT, "after '.' in qualified name")
		if !ok {
			break
		}
		parts = append(parts, seg.Lexeme)
	}
	return parts
}

// parseNamespaceDecl handles both the braced form (`namespace N { ... }`)
// and the file-scoped form (`namespace N;`) (spec §4.3.3 nesting rule:
// file-scoped namespaces may not contain nested namespace declarations,
// and at most one file-scoped namespace may appear per file).
func (p *Parser) parseNamespaceDecl() *ast.NamespaceDecl {
	tok := p.current()
	p.advance() // namespace
	parts := p.parseQualifiedName()
	n := &ast.NamespaceDecl{Token: tok, QualifiedName: parts}

	if p.match(token.SEMI) {
		n.FileScoped = true
		p.arena.Keep(n)
		for !p.atEnd() {
			if p.check(token.KW_NAMESPACE) {
				bad := p.current()
				p.errorf(diagnostics.ErrB002NestedFileNamespace, bad, "a file-scoped namespace cannot contain another namespace declaration")
				p.advance()
				p.synchronize()
				continue
			}
			d := p.parseTopLevelDecl()
			if d != nil {
				n.Decls = append(n.Decls, d)
			}
		}
		return n
	}

	p.pushContext(CtxNamespace)
	p.consume(token.LBRACE, "to open namespace body")
	for !p.check(token.RBRACE) && !p.atEnd() {
		if p.check(token.KW_NAMESPACE) {
			nested := p.parseNamespaceDecl()
			n.Decls = append(n.Decls, nested)
			continue
		}
		d := p.parseTopLevelDecl()
		if d != nil {
			n.Decls = append(n.Decls, d)
		}
	}
	p.consume(token.RBRACE, "to close namespace body")
	p.popContext()
	p.arena.Keep(n)
	return n
}

// Decl is the nested-namespace-capable union: NamespaceDecl implements
// Decl too so it can sit in another NamespaceDecl's Decls slice.
var _ ast.Decl = (*ast.NamespaceDecl)(nil)

// parseTopLevelDecl dispatches on modifiers/keyword to a concrete
// declaration production, synchronizing on failure.
func (p *Parser) parseTopLevelDecl() ast.Decl {
	p.lastErrorWasCascade = false
	start := p.checkpoint()
	access, mods := p.parseModifiers()

	switch {
	case p.check(token.KW_TYPE):
		return p.parseTypeDecl(ast.TypeKindClass, access, mods)
	case p.check(token.KW_STRUCT):
		return p.parseTypeDecl(ast.TypeKindStruct, access, mods)
	case p.check(token.KW_ENUM):
		return p.parseEnumDecl(access)
	case p.check(token.KW_FN):
		return p.parseFunctionDecl(access, mods)
	case p.check(token.KW_NEW):
		return p.parseConstructorDecl(access, mods)
	case p.check(token.KW_VAR):
		return p.parseVarDecl(access, mods, p.context() == CtxTypeBody)
	}

	if typeRef, nameTok, ok := p.tryParseTypedIdentifier(); ok {
		return p.parseVariableOrPropertyFromHeader(typeRef, nameTok, access, mods, p.context() == CtxTypeBody)
	}

	tok := p.current()
	p.errorf(diagnostics.ErrP004MalformedDecl, tok, "expected a declaration, found %s", tok.Kind)
	if p.checkpoint() == start {
		p.advance()
	}
	p.synchronize()
	return p.errorNode(tok, "expected a declaration")
}

// parseModifiers consumes a run of access/modifier keywords in any order,
// folding access level and the modifier bitset (spec §3.2).
func (p *Parser) parseModifiers() (ast.AccessLevel, ast.Modifiers) {
	access := ast.AccessDefault
	var mods ast.Modifiers
	for {
		switch p.current().Kind {
		case token.KW_PUBLIC:
			access = ast.AccessPublic
		case token.KW_PRIVATE:
			access = ast.AccessPrivate
		case token.KW_PROTECTED:
			access = ast.AccessProtected
		case token.KW_STATIC:
			mods |= ast.ModStatic
		case token.KW_VIRTUAL:
			mods |= ast.ModVirtual
		case token.KW_OVERRIDE:
			mods |= ast.ModOverride
		case token.KW_ABSTRACT:
			mods |= ast.ModAbstract
		case token.KW_ASYNC:
			mods |= ast.ModAsync
		case token.KW_EXTERN:
			mods |= ast.ModExtern
		case token.KW_REF:
			mods |= ast.ModRef
		case token.KW_INLINE:
			mods |= ast.ModInline
		default:
			return access, mods
		}
		p.advance()
	}
}

func (p *Parser) parseTypeDecl(kind ast.TypeKind, access ast.AccessLevel, mods ast.Modifiers) ast.Decl {
	tok := p.current()
	p.advance() // type | struct
	nameTok, _ := p.consume(token.IDENT, "as type name")
	n := &ast.TypeDecl{Token: tok, Name: nameTok.Lexeme, Kind: kind, Access: access, Modifiers: mods}

	if p.match(token.COLON) {
		n.BaseType = p.parseTypeExpr()
	}

	p.pushContext(CtxTypeBody)
	p.consume(token.LBRACE, "to open type body")
	for !p.check(token.RBRACE) && !p.atEnd() {
		member := p.parseTopLevelDecl()
		if member != nil {
			n.Members = append(n.Members, member)
		}
	}
	p.consume(token.RBRACE, "to close type body")
	p.popContext()
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseEnumDecl(access ast.AccessLevel) ast.Decl {
	tok := p.current()
	p.advance() // enum
	nameTok, _ := p.consume(token.IDENT, "as enum name")
	n := &ast.EnumDecl{Token: tok, Name: nameTok.Lexeme, Access: access}

	p.pushContext(CtxTypeBody)
	p.consume(token.LBRACE, "to open enum body")
	for !p.check(token.RBRACE) && !p.atEnd() {
		if p.check(token.IDENT) && (p.peek(1).Kind == token.COMMA || p.peek(1).Kind == token.SEMI || p.peek(1).Kind == token.LPAREN || p.peek(1).Kind == token.RBRACE) {
			n.Cases = append(n.Cases, p.parseEnumCaseDecl())
			continue
		}
		member := p.parseTopLevelDecl()
		if member != nil {
			n.Members = append(n.Members, member)
		}
	}
	p.consume(token.RBRACE, "to close enum body")
	p.popContext()
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseEnumCaseDecl() *ast.EnumCaseDecl {
	tok := p.current()
	p.advance() // case name
	n := &ast.EnumCaseDecl{Token: tok, Name: tok.Lexeme}
	if p.match(token.LPAREN) {
		for !p.check(token.RPAREN) && !p.atEnd() {
			n.AssociatedTypes = append(n.AssociatedTypes, p.parseTypeExpr())
			if !p.match(token.COMMA) {
				break
			}
		}
		p.consume(token.RPAREN, "to close enum case associated types")
	}
	p.match(token.COMMA)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseFunctionDecl(access ast.AccessLevel, mods ast.Modifiers) ast.Decl {
	tok := p.current()
	p.advance() // fn
	nameTok, _ := p.consume(token.IDENT, "as function name")
	n := &ast.FunctionDecl{Token: tok, Name: nameTok.Lexeme, Access: access, Modifiers: mods}

	p.consume(token.LPAREN, "to open parameter list")
	n.Params = p.parseParameterList()
	p.consume(token.RPAREN, "to close parameter list")

	if p.match(token.COLON) || p.match(token.FATARROW) {
		n.ReturnType = p.parseTypeExpr()
	}

	if p.check(token.LBRACE) {
		p.pushContext(CtxFunction)
		n.Body = p.parseBlockStmt()
		p.popContext()
	} else {
		p.consume(token.SEMI, "after abstract/extern function declaration")
	}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseConstructorDecl(access ast.AccessLevel, mods ast.Modifiers) ast.Decl {
	tok := p.current()
	p.advance() // new
	n := &ast.ConstructorDecl{Token: tok, Access: access, Modifiers: mods}
	p.consume(token.LPAREN, "to open constructor parameter list")
	n.Params = p.parseParameterList()
	p.consume(token.RPAREN, "to close constructor parameter list")
	p.pushContext(CtxFunction)
	n.Body = p.parseBlockStmt()
	p.popContext()
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseParameterList() []*ast.ParameterDecl {
	var params []*ast.ParameterDecl
	for !p.check(token.RPAREN) && !p.atEnd() {
		_, mods := p.parseModifiers()
		typeRef := p.parseTypeExpr()
		nameTok, _ := p.consume(token.IDENT, "as parameter name")
		param := &ast.ParameterDecl{Token: nameTok, Name: nameTok.Lexeme, TypeRef: typeRef, Modifiers: mods}
		if p.match(token.ASSIGN) {
			param.DefaultValue = p.parseExpression(precAssignment)
		}
		p.arena.Keep(param)
		params = append(params, param)
		if !p.match(token.COMMA) {
			break
		}
	}
	return params
}

// parseVarDecl handles the `var name = expr;` form, with an optional
// `: Type` annotation (`var name: Type = expr;`) ahead of the initializer
// (spec §4.3.3).
func (p *Parser) parseVarDecl(access ast.AccessLevel, mods ast.Modifiers, isField bool) ast.Decl {
	p.advance() // var
	nameTok, _ := p.consume(token.IDENT, "as variable name")
	n := &ast.VariableDecl{Token: nameTok, Name: nameTok.Lexeme, IsField: isField, Access: access, Modifiers: mods}
	if p.match(token.COLON) {
		n.TypeRef = p.parseTypeExpr()
	}
	if p.match(token.ASSIGN) {
		n.Initializer = p.parseExpression(precAssignment)
	}
	p.consume(token.SEMI, "after variable declaration")
	p.arena.Keep(n)
	return n
}

// parseVariableOrPropertyFromHeader disambiguates `Type name` into a
// VariableDecl or PropertyDecl based on what follows the name (spec
// §4.3.3: `;` or `= expr;` is a variable/field; `=>`, `{ get; }`, or
// `= expr { get; set; }` is a property).
func (p *Parser) parseVariableOrPropertyFromHeader(typeRef ast.TypeExpr, nameTok token.Token, access ast.AccessLevel, mods ast.Modifiers, isField bool) ast.Decl {
	switch {
	case p.check(token.ARROW):
		p.advance()
		n := &ast.PropertyDecl{Token: nameTok, Name: nameTok.Lexeme, TypeRef: typeRef, Access: access, Modifiers: mods, HasGetter: true}
		n.GetterExpr = p.parseExpression(precAssignment)
		p.consume(token.SEMI, "after expression-bodied property")
		p.arena.Keep(n)
		return n

	case p.check(token.LBRACE):
		return p.parsePropertyAccessors(nameTok, typeRef, nil, access, mods)

	case p.match(token.ASSIGN):
		init := p.parseExpression(precAssignment)
		if p.check(token.LBRACE) {
			return p.parsePropertyAccessors(nameTok, typeRef, init, access, mods)
		}
		p.consume(token.SEMI, "after variable declaration")
		n := &ast.VariableDecl{Token: nameTok, Name: nameTok.Lexeme, TypeRef: typeRef, Initializer: init, IsField: isField, Access: access, Modifiers: mods}
		p.arena.Keep(n)
		return n

	default:
		p.consume(token.SEMI, "after variable declaration")
		n := &ast.VariableDecl{Token: nameTok, Name: nameTok.Lexeme, TypeRef: typeRef, IsField: isField, Access: access, Modifiers: mods}
		p.arena.Keep(n)
		return n
	}
}

// parsePropertyAccessors parses the `{ get ... set ... }` accessor block
// shared by both the bare and initializer forms.
func (p *Parser) parsePropertyAccessors(nameTok token.Token, typeRef ast.TypeExpr, init ast.Expression, access ast.AccessLevel, mods ast.Modifiers) ast.Decl {
	n := &ast.PropertyDecl{Token: nameTok, Name: nameTok.Lexeme, TypeRef: typeRef, Initializer: init, Access: access, Modifiers: mods}
	p.consume(token.LBRACE, "to open property accessor block")
	for !p.check(token.RBRACE) && !p.atEnd() {
		switch {
		case p.check(token.KW_GET):
			p.advance()
			n.HasGetter = true
			if p.match(token.ARROW) {
				n.GetterExpr = p.parseExpression(precAssignment)
				p.consume(token.SEMI, "after expression-bodied getter")
			} else if p.check(token.LBRACE) {
				p.pushContext(CtxPropertyGetter)
				n.GetterBody = p.parseBlockStmt()
				p.popContext()
			} else {
				p.consume(token.SEMI, "after auto-implemented getter")
			}
		case p.check(token.KW_SET):
			p.advance()
			n.HasSetter = true
			if p.check(token.LBRACE) {
				p.pushContext(CtxPropertySetter)
				n.SetterBody = p.parseBlockStmt()
				p.popContext()
			} else {
				p.consume(token.SEMI, "after auto-implemented setter")
			}
		default:
			bad := p.current()
			p.errorf(diagnostics.ErrP004MalformedDecl, bad, "expected 'get' or 'set' in property accessor block")
			p.synchronize()
		}
	}
	p.consume(token.RBRACE, "to close property accessor block")
	p.arena.Keep(n)
	return n
}
