package sexp

// maxParseDepth bounds list nesting so adversarial input cannot grow the
// stack without limit. The grammar itself imposes no nesting limit.
const maxParseDepth = 512

// Parser is a single-lookahead recursive descent parser over a token
// sequence. It produces exactly one generic parse tree.
type Parser struct {
	tokens  []Token
	current int
	depth   int
}

// NewParser creates a parser over the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseString tokenizes and parses input, returning the single top-level
// expression. Unlike token-level Parse, it requires the whole input to be
// consumed: trailing tokens after the first expression are an error.
func ParseString(input string) (SExp, error) {
	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, &ParseError{Kind: ErrLex, Lex: err.(*LexError)}
	}

	p := NewParser(tokens)
	exp, perr := p.Parse()
	if perr != nil {
		return nil, perr
	}

	if tok := p.currentToken(); tok.Type != TokenEOF {
		return nil, &ParseError{Kind: ErrUnexpectedToken, Token: tok.Literal, Pos: tok.Pos}
	}
	return exp, nil
}

// Parse parses one expression from the token stream. Tokens after the
// first expression are left unconsumed.
func (p *Parser) Parse() (SExp, error) {
	if p.atEnd() {
		return nil, &ParseError{Kind: ErrEmptyInput}
	}
	return p.parseSExp()
}

func (p *Parser) parseSExp() (SExp, error) {
	tok := p.currentToken()

	switch tok.Type {
	case TokenLParen:
		return p.parseList()
	case TokenSymbol:
		p.advance()
		return &Symbol{Value: tok.Literal, Position: tok.Pos}, nil
	case TokenKeyword:
		p.advance()
		return &Keyword{Name: tok.Literal, Position: tok.Pos}, nil
	case TokenString:
		p.advance()
		return &String{Value: tok.Literal, Position: tok.Pos}, nil
	case TokenNumber:
		p.advance()
		return &Number{Value: tok.Literal, Position: tok.Pos}, nil
	case TokenNil:
		p.advance()
		return &Nil{Position: tok.Pos}, nil
	case TokenRParen:
		return nil, &ParseError{Kind: ErrUnexpectedCloseParen, Pos: tok.Pos}
	case TokenEOF:
		return nil, &ParseError{Kind: ErrEmptyInput}
	default:
		return nil, &ParseError{Kind: ErrUnexpectedToken, Token: tok.Literal, Pos: tok.Pos}
	}
}

// parseList parses '(' sexp* ')'. The list node carries the position of
// the opening parenthesis, which is also used for the unterminated-list
// error when EOF arrives before the close.
func (p *Parser) parseList() (SExp, error) {
	pos := p.currentToken().Pos

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxParseDepth {
		return nil, &ParseError{Kind: ErrDepthExceeded, Pos: pos}
	}

	p.advance() // skip '('

	var elements []SExp
	for {
		if p.atEnd() {
			return nil, &ParseError{Kind: ErrUnterminatedList, Pos: pos}
		}
		if p.currentToken().Type == TokenRParen {
			p.advance() // skip ')'
			break
		}

		element, err := p.parseSExp()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}

	return &List{Elements: elements, Position: pos}, nil
}

func (p *Parser) currentToken() Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	return Token{Type: TokenEOF}
}

func (p *Parser) advance() {
	if p.current < len(p.tokens) {
		p.current++
	}
}

func (p *Parser) atEnd() bool {
	return p.currentToken().Type == TokenEOF
}
