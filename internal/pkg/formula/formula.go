// Package formula evaluates the arithmetic expressions stored on benefit
// types, e.g. "basic_salary * 0.5 + daily_rate * 3". Variables are resolved
// against an explicit binding map before evaluation; the grammar is limited to
// + - * / ( ) and decimal literals, so a formula can never execute anything.
package formula

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Bindings maps variable names appearing in a formula to their values.
type Bindings map[string]decimal.Decimal

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenIdent
	tokenOperator
	tokenLeftParen
	tokenRightParen
	tokenEOF
)

type token struct {
	kind tokenKind
	text string
}

// Eval parses and evaluates expr with the given variable bindings.
// Unknown variables, malformed syntax, and division by zero all return an
// error; the caller decides whether that downgrades to a zero amount.
func Eval(expr string, vars Bindings) (decimal.Decimal, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return decimal.Zero, err
	}

	p := &parser{tokens: tokens, vars: vars}
	result, err := p.parseExpression()
	if err != nil {
		return decimal.Zero, err
	}
	if p.peek().kind != tokenEOF {
		return decimal.Zero, fmt.Errorf("unexpected token %q", p.peek().text)
	}
	return result, nil
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	runes := []rune(expr)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{tokenLeftParen, "("})
			i++
		case r == ')':
			tokens = append(tokens, token{tokenRightParen, ")"})
			i++
		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, token{tokenOperator, string(r)})
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			text := string(runes[start:i])
			if strings.Count(text, ".") > 1 {
				return nil, fmt.Errorf("malformed number %q", text)
			}
			tokens = append(tokens, token{tokenNumber, text})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{tokenIdent, string(runes[start:i])})
		default:
			return nil, fmt.Errorf("invalid character %q", string(r))
		}
	}
	return append(tokens, token{tokenEOF, ""}), nil
}

type parser struct {
	tokens []token
	pos    int
	vars   Bindings
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

// expression := term (('+' | '-') term)*
func (p *parser) parseExpression() (decimal.Decimal, error) {
	left, err := p.parseTerm()
	if err != nil {
		return decimal.Zero, err
	}
	for p.peek().kind == tokenOperator && (p.peek().text == "+" || p.peek().text == "-") {
		op := p.next().text
		right, err := p.parseTerm()
		if err != nil {
			return decimal.Zero, err
		}
		if op == "+" {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
	return left, nil
}

// term := factor (('*' | '/') factor)*
func (p *parser) parseTerm() (decimal.Decimal, error) {
	left, err := p.parseFactor()
	if err != nil {
		return decimal.Zero, err
	}
	for p.peek().kind == tokenOperator && (p.peek().text == "*" || p.peek().text == "/") {
		op := p.next().text
		right, err := p.parseFactor()
		if err != nil {
			return decimal.Zero, err
		}
		if op == "*" {
			left = left.Mul(right)
		} else {
			if right.IsZero() {
				return decimal.Zero, fmt.Errorf("division by zero")
			}
			left = left.Div(right)
		}
	}
	return left, nil
}

// factor := number | ident | '(' expression ')' | ('+' | '-') factor
func (p *parser) parseFactor() (decimal.Decimal, error) {
	t := p.next()
	switch t.kind {
	case tokenNumber:
		value, err := decimal.NewFromString(t.text)
		if err != nil {
			return decimal.Zero, fmt.Errorf("malformed number %q", t.text)
		}
		return value, nil
	case tokenIdent:
		value, ok := p.vars[t.text]
		if !ok {
			return decimal.Zero, fmt.Errorf("unknown variable %q", t.text)
		}
		return value, nil
	case tokenLeftParen:
		inner, err := p.parseExpression()
		if err != nil {
			return decimal.Zero, err
		}
		if closing := p.next(); closing.kind != tokenRightParen {
			return decimal.Zero, fmt.Errorf("missing closing parenthesis")
		}
		return inner, nil
	case tokenOperator:
		if t.text == "-" {
			inner, err := p.parseFactor()
			if err != nil {
				return decimal.Zero, err
			}
			return inner.Neg(), nil
		}
		if t.text == "+" {
			return p.parseFactor()
		}
		return decimal.Zero, fmt.Errorf("unexpected operator %q", t.text)
	case tokenEOF:
		return decimal.Zero, fmt.Errorf("unexpected end of expression")
	default:
		return decimal.Zero, fmt.Errorf("unexpected token %q", t.text)
	}
}
