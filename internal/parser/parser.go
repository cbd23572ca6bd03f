package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sunholo/mltt/internal/lexer"
	"github.com/sunholo/mltt/internal/syntax"
)

// ParseError is a structured parser error.
type ParseError struct {
	Message   string
	NearToken lexer.Token
	Expected  []lexer.TokenType
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error at %d:%d: %s", e.NearToken.Line, e.NearToken.Column, e.Message)
	if len(e.Expected) > 0 {
		names := make([]string, len(e.Expected))
		for i, t := range e.Expected {
			names[i] = t.String()
		}
		msg += fmt.Sprintf(" (expected %s)", strings.Join(names, " or "))
	}
	return msg
}

// Parser parses the concrete syntax into terms. The grammar maps 1:1 onto
// the five constructors; the only sugar is `A -> B` for a Π whose binder
// does not occur in the codomain.
//
//	term   := binder | arrow
//	binder := (λ | \ | fun | Π | forall) '(' IDENT ':' term ')' '.' term
//	arrow  := app ('->' term)?
//	app    := atom atom*
//	atom   := IDENT | UNIVERSE | '(' term ')'
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	errors    []error
}

// New creates a new Parser.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Prime curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Parse is a convenience that lexes and parses a single term from a string.
func Parse(input string) (syntax.Term, error) {
	return New(lexer.New(input)).Parse()
}

// Parse parses a single term and requires the input to be exhausted.
func (p *Parser) Parse() (syntax.Term, error) {
	t := p.parseTerm()
	if t != nil && p.curToken.Type != lexer.EOF {
		p.errorf(p.curToken, "unexpected trailing input %q", p.curToken.Literal)
	}
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return t, nil
}

// Errors returns all collected parse errors.
func (p *Parser) Errors() []error {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) parseTerm() syntax.Term {
	switch p.curToken.Type {
	case lexer.LAMBDA:
		return p.parseBinder(true)
	case lexer.PI:
		return p.parseBinder(false)
	}
	return p.parseArrow()
}

// parseBinder parses λ(x : A).t and Π(x : A).B.
func (p *Parser) parseBinder(isLambda bool) syntax.Term {
	p.nextToken() // consume the binder token
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	if p.curToken.Type != lexer.IDENT {
		p.errorf(p.curToken, "binder name must be an identifier, got %q", p.curToken.Literal)
		return nil
	}
	name := p.curToken.Literal
	p.nextToken()
	if !p.expect(lexer.COLON) {
		return nil
	}
	domain := p.parseTerm()
	if domain == nil {
		return nil
	}
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	if !p.expect(lexer.DOT) {
		return nil
	}
	body := p.parseTerm()
	if body == nil {
		return nil
	}
	if isLambda {
		return &syntax.Lam{Binder: name, Domain: domain, Body: body}
	}
	return &syntax.Pi{Binder: name, Domain: domain, Codomain: body}
}

// parseArrow parses application chains and the A -> B sugar, which
// desugars to a Π with an unused binder.
func (p *Parser) parseArrow() syntax.Term {
	left := p.parseApp()
	if left == nil {
		return nil
	}
	if p.curToken.Type == lexer.ARROW {
		p.nextToken()
		right := p.parseTerm()
		if right == nil {
			return nil
		}
		return &syntax.Pi{Binder: "_", Domain: left, Codomain: right}
	}
	return left
}

func (p *Parser) parseApp() syntax.Term {
	t := p.parseAtom()
	if t == nil {
		return nil
	}
	for p.startsAtom() {
		arg := p.parseAtom()
		if arg == nil {
			return nil
		}
		t = &syntax.App{Fn: t, Arg: arg}
	}
	return t
}

func (p *Parser) startsAtom() bool {
	switch p.curToken.Type {
	case lexer.IDENT, lexer.UNIVERSE, lexer.LPAREN:
		return true
	}
	return false
}

func (p *Parser) parseAtom() syntax.Term {
	switch p.curToken.Type {
	case lexer.IDENT:
		t := &syntax.Var{Name: p.curToken.Literal}
		p.nextToken()
		return t

	case lexer.UNIVERSE:
		level, err := parseUniverseLevel(p.curToken.Literal)
		if err != nil {
			p.errorf(p.curToken, "bad universe literal %q", p.curToken.Literal)
			return nil
		}
		p.nextToken()
		return &syntax.Universe{Level: level}

	case lexer.LPAREN:
		p.nextToken()
		t := p.parseTerm()
		if t == nil {
			return nil
		}
		if !p.expect(lexer.RPAREN) {
			return nil
		}
		return t
	}
	p.errorf(p.curToken, "unexpected token %q", p.curToken.Literal)
	return nil
}

func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.curToken.Type != tt {
		p.errors = append(p.errors, &ParseError{
			Message:   fmt.Sprintf("unexpected token %q", p.curToken.Literal),
			NearToken: p.curToken,
			Expected:  []lexer.TokenType{tt},
		})
		return false
	}
	p.nextToken()
	return true
}

func (p *Parser) errorf(near lexer.Token, format string, args ...interface{}) {
	p.errors = append(p.errors, &ParseError{
		Message:   fmt.Sprintf(format, args...),
		NearToken: near,
	})
}

// parseUniverseLevel extracts the level from Type0 / Type_0 literals.
func parseUniverseLevel(lit string) (int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(lit, "Type"), "_")
	return strconv.Atoi(digits)
}
