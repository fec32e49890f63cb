package parser

import (
	"github.com/hauke96/sigolo/v2"
	"imvault/query"
	"strings"
)

// Parser groups the token stream of the lexer into field comparisons.
type Parser struct {
	token []*Token
	index int
}

// ParseQueryString turns a query like `id>=10 name="Joe Starr" name:"^Joe"` into field comparisons in the order they
// appear in the query. Positions in returned errors refer to the query without leading and trailing whitespace.
//
// A ';' has no special meaning and becomes part of the field name following it.
func ParseQueryString(queryString string) ([]query.FieldComparison, error) {
	// The appended whitespace terminates the last unquoted value.
	runes := []rune(strings.Trim(queryString, "\n\r\t ") + " ")
	lexer := Lexer{
		input: runes,
		index: 0,
		state: scanningField,
	}

	token, err := lexer.read()
	if err != nil {
		return nil, err
	}

	sigolo.Tracef("Found %d token", len(token))
	for _, t := range token {
		sigolo.Tracef("  kind=%s, pos=%d : %s", t.kind, t.startPosition, t.lexeme)
	}

	parser := Parser{
		token: token,
		index: 0,
	}
	return parser.parse()
}

func (p *Parser) currentToken() *Token {
	if p.index >= len(p.token) {
		return nil
	}
	return p.token[p.index]
}

func (p *Parser) parse() ([]query.FieldComparison, error) {
	if incompleteTokenCount := len(p.token) % 3; incompleteTokenCount != 0 {
		incompleteToken := p.token[len(p.token)-incompleteTokenCount:]
		return nil, MalformedQueryErrorIncompleteComparison(incompleteToken[0].startPosition, incompleteToken)
	}

	comparisons := make([]query.FieldComparison, 0, len(p.token)/3)
	for p.currentToken() != nil {
		comparison, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, *comparison)
	}

	return comparisons, nil
}

func (p *Parser) parseComparison() (*query.FieldComparison, error) {
	fieldToken, err := p.expectToken(TokenKindField)
	if err != nil {
		return nil, err
	}

	operatorToken, err := p.expectToken(TokenKindOperator)
	if err != nil {
		return nil, err
	}
	operator, err := query.OperatorForSymbol(operatorToken.lexeme)
	if err != nil {
		return nil, err
	}

	valueToken, err := p.expectToken(TokenKindValue)
	if err != nil {
		return nil, err
	}

	comparison := query.NewFieldComparison(fieldToken.lexeme, operator, valueToken.lexeme)
	return &comparison, nil
}

// expectToken returns the current token and moves to the next one if the current token is of the given kind.
func (p *Parser) expectToken(kind TokenKind) (*Token, error) {
	token := p.currentToken()
	if token.kind != kind {
		return nil, MalformedQueryErrorExpectedTokenKind(token.startPosition, token.lexeme, token.kind, kind)
	}
	p.index++
	return token, nil
}
