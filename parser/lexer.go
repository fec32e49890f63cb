package parser

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"imvault/query"
	"imvault/util"
	"unicode"
)

type scanState int

const (
	scanningField scanState = iota
	scanningValue
)

func (s scanState) String() string {
	switch s {
	case scanningField:
		return "field"
	case scanningValue:
		return "value"
	}
	return fmt.Sprintf("!! INVALID SCAN STATE %d !!", int(s))
}

// Lexer splits a query like `id>=10 name="Joe Starr"` into field, operator and value token. The input must end with a
// whitespace, otherwise the last unquoted value is never terminated.
type Lexer struct {
	input []rune
	index int // Position in input.

	state        scanState
	insideQuotes bool
	quote        rune // The opening quote (" or ') of the current quoted value.
	quoteStart   int

	buffer      []rune // Lexeme of the token currently scanned.
	bufferStart int
	token       []*Token
}

// char returns the rune at the current location or the rune '-1' if there is no next char.
func (l *Lexer) char() rune {
	if l.index >= len(l.input) {
		return -1
	}
	return l.input[l.index]
}

func (l *Lexer) read() ([]*Token, error) {
	for l.index < len(l.input) {
		var err error

		switch l.state {
		case scanningField:
			err = l.scanField()
		case scanningValue:
			err = l.scanValue()
		default:
			util.LogFatalBug("Unknown scan state %s at index %d", l.state, l.index)
		}

		if err != nil {
			return nil, err
		}
	}

	if l.insideQuotes {
		// The last rune is the terminating whitespace and not part of the user input.
		fragment := string(l.input[l.quoteStart : len(l.input)-1])
		return nil, MalformedQueryErrorUnterminatedQuote(l.quoteStart, l.quote, fragment)
	}

	if len(l.buffer) > 0 {
		// A field name without operator. The parser reports it as incomplete comparison.
		l.flush(TokenKindField)
	}

	return l.token, nil
}

// scanField processes the current rune as part of a field name. Only operators end a field name, whitespace is skipped.
func (l *Lexer) scanField() error {
	// Longest symbols first, otherwise ">=" would be read as ">" followed by a value starting with "=".
	for length := query.MaxOperatorSymbolLength; length > 0; length-- {
		if l.index+length > len(l.input) {
			continue
		}

		symbol := string(l.input[l.index : l.index+length])
		if query.IsOperatorSymbol(symbol) {
			return l.operator(symbol)
		}
	}

	if unicode.IsSpace(l.char()) {
		l.tracef("Skip whitespace")
		l.index++
		return nil
	}

	l.appendChar()
	return nil
}

// scanValue processes the current rune as part of a value. Unquoted values end at the next whitespace, quoted values at
// the next quote of the same kind as the opening one.
func (l *Lexer) scanValue() error {
	char := l.char()

	if l.insideQuotes {
		if char == l.quote {
			l.tracef("Found closing quote")
			l.flush(TokenKindValue)
			l.insideQuotes = false
			l.state = scanningField
			l.index++
			return nil
		}

		l.appendChar()
		return nil
	}

	switch {
	case char == '"' || char == '\'':
		l.tracef("Found opening quote")
		l.insideQuotes = true
		l.quote = char
		l.quoteStart = l.index
		if len(l.buffer) == 0 {
			l.bufferStart = l.index + 1
		}
		l.index++
	case unicode.IsSpace(char):
		l.flush(TokenKindValue)
		l.state = scanningField
		l.index++
	default:
		l.appendChar()
	}

	return nil
}

// operator ends the current field name and emits the operator token. The lexer is in value state afterwards.
func (l *Lexer) operator(symbol string) error {
	if len(l.buffer) == 0 {
		return MalformedQueryErrorMissingField(l.index, symbol)
	}
	l.flush(TokenKindField)

	operatorToken := &Token{
		kind:          TokenKindOperator,
		lexeme:        symbol,
		startPosition: l.index,
	}
	l.tracef("Found token kind=%s, pos=%d, lexeme=%q", operatorToken.kind, operatorToken.startPosition, operatorToken.lexeme)
	l.token = append(l.token, operatorToken)

	l.index += len([]rune(symbol))
	l.state = scanningValue
	l.insideQuotes = false
	l.bufferStart = l.index

	return nil
}

func (l *Lexer) appendChar() {
	if len(l.buffer) == 0 {
		l.bufferStart = l.index
	}
	l.buffer = append(l.buffer, l.char())
	l.index++
}

func (l *Lexer) flush(kind TokenKind) {
	token := &Token{
		kind:          kind,
		lexeme:        string(l.buffer),
		startPosition: l.bufferStart,
	}
	l.tracef("Found token kind=%s, pos=%d, lexeme=%q", token.kind, token.startPosition, token.lexeme)
	l.token = append(l.token, token)
	l.buffer = l.buffer[:0]
}

func (l *Lexer) tracef(format string, args ...any) {
	if !sigolo.ShouldLogTrace() {
		return
	}

	formattedMessage := format
	if len(args) > 0 {
		formattedMessage = fmt.Sprintf(format, args...)
	}
	sigolo.Traceb(1, "[%d, %q, %s] %s", l.index, l.char(), l.state, formattedMessage)
}
