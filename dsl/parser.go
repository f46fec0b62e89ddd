package dsl

import (
	"fmt"
	"strings"
)

// Parse consumes a token sequence and returns the validated generator
// description. The grammar is LL(1): every branch is chosen from the
// current token's kind alone, so a single forward pass suffices.
//
//	file        := [prelude] (typeDef | abstractTypeDef)* [postlude]
//	typeDef     := "type" IDENT STRING
//	abstractTypeDef := IDENT "(" member* opDecl* ")" "=" variant ("|" variant)*
//	variant     := IDENT "(" (member | implementation)* ")"
//	member      := IDENT ["by_move"] STRING
//	opDecl      := "function" IDENT STRING
//	implementation := "implement" IDENT STRING
//
// The first failure aborts the parse; no partial tree is returned.
func Parse(tokens []Token) (*GeneratorDescription, error) {
	c := NewCursor(tokens)
	desc := &GeneratorDescription{}

	if c.kind() == TokenString {
		tok, _ := c.Current()
		desc.Prelude = stringPayload(tok.Lexeme)
		c.advance()
	}

	seenTypes := make(map[string]bool)
	for !c.AtEnd() {
		tok, err := c.Current()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenType:
			def, err := parseTypeDefinition(c)
			if err != nil {
				return nil, err
			}
			desc.TypeDefinitions = append(desc.TypeDefinitions, def)
		case TokenIdentifier:
			abstract, err := parseAbstractType(c)
			if err != nil {
				return nil, err
			}
			if seenTypes[abstract.Name] {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateAbstractType, abstract.Name)
			}
			seenTypes[abstract.Name] = true
			desc.AbstractTypes = append(desc.AbstractTypes, abstract)
		case TokenString:
			desc.Postlude = stringPayload(tok.Lexeme)
			c.advance()
			if !c.AtEnd() {
				return nil, ErrTrailingContent
			}
			return desc, nil
		default:
			return nil, fmt.Errorf("%w: %v (%q) at position %d",
				ErrUnrecognizedConstruct, tok.Kind, tok.Lexeme, tok.Pos)
		}
	}

	return desc, nil
}

// ParseSource tokenizes and parses DSL source text in one step.
func ParseSource(input string) (*GeneratorDescription, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func parseTypeDefinition(c *Cursor) (TypeDefinition, error) {
	if _, err := c.Expect(TokenType); err != nil {
		return TypeDefinition{}, err
	}
	name, err := c.Expect(TokenIdentifier)
	if err != nil {
		return TypeDefinition{}, err
	}
	body, err := c.Expect(TokenString)
	if err != nil {
		return TypeDefinition{}, err
	}
	return TypeDefinition{Name: name.Lexeme, Body: stringPayload(body.Lexeme)}, nil
}

func parseAbstractType(c *Cursor) (*AbstractType, error) {
	name, err := c.Expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := c.Expect(TokenLParen); err != nil {
		return nil, err
	}

	// Shared members precede operation declarations; once the dispatch
	// switches to "function" it never switches back inside this group.
	var members []Member
	for c.kind() == TokenIdentifier {
		member, err := parseMember(c)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	var operations []Operation
	declared := make(map[string]bool)
	for c.kind() == TokenFunction {
		op, err := parseOperation(c)
		if err != nil {
			return nil, err
		}
		// Rejected here, before any variant is parsed: the duplicate is a
		// property of the abstract type alone.
		if declared[op.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOperation, op.Name)
		}
		declared[op.Name] = true
		operations = append(operations, op)
	}

	if _, err := c.Expect(TokenRParen); err != nil {
		return nil, err
	}
	if _, err := c.Expect(TokenEquals); err != nil {
		return nil, err
	}

	var variants []NamedVariant
	for {
		variant, err := parseVariant(c, operations)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
		if c.kind() != TokenPipe {
			break
		}
		c.advance()
	}

	return NewAbstractType(name.Lexeme, members, operations, variants)
}

func parseVariant(c *Cursor, operations []Operation) (NamedVariant, error) {
	name, err := c.Expect(TokenIdentifier)
	if err != nil {
		return NamedVariant{}, err
	}
	if _, err := c.Expect(TokenLParen); err != nil {
		return NamedVariant{}, err
	}

	var members []Member
	var implementations []Implementation
loop:
	for {
		switch c.kind() {
		case TokenIdentifier:
			member, err := parseMember(c)
			if err != nil {
				return NamedVariant{}, err
			}
			members = append(members, member)
		case TokenImplement:
			impl, err := parseImplementation(c)
			if err != nil {
				return NamedVariant{}, err
			}
			implementations = append(implementations, impl)
		default:
			break loop
		}
	}

	if _, err := c.Expect(TokenRParen); err != nil {
		return NamedVariant{}, err
	}

	variant, err := NewVariant(operations, members, implementations)
	if err != nil {
		return NamedVariant{}, fmt.Errorf("variant %s: %w", name.Lexeme, err)
	}
	return NamedVariant{Name: name.Lexeme, Variant: variant}, nil
}

func parseMember(c *Cursor) (Member, error) {
	name, err := c.Expect(TokenIdentifier)
	if err != nil {
		return Member{}, err
	}
	byMove := c.kind() == TokenByMove
	if byMove {
		c.advance()
	}
	typ, err := c.Expect(TokenString)
	if err != nil {
		return Member{}, err
	}
	return Member{Name: name.Lexeme, ByMove: byMove, Type: stringPayload(typ.Lexeme)}, nil
}

func parseOperation(c *Cursor) (Operation, error) {
	if _, err := c.Expect(TokenFunction); err != nil {
		return Operation{}, err
	}
	name, err := c.Expect(TokenIdentifier)
	if err != nil {
		return Operation{}, err
	}
	ret, err := c.Expect(TokenString)
	if err != nil {
		return Operation{}, err
	}
	payload := stringPayload(ret.Lexeme)
	return Operation{
		Name:          name.Lexeme,
		ReturnType:    payload,
		HasReturnType: payload != "",
	}, nil
}

func parseImplementation(c *Cursor) (Implementation, error) {
	if _, err := c.Expect(TokenImplement); err != nil {
		return Implementation{}, err
	}
	name, err := c.Expect(TokenIdentifier)
	if err != nil {
		return Implementation{}, err
	}
	body, err := c.Expect(TokenString)
	if err != nil {
		return Implementation{}, err
	}
	return Implementation{Name: name.Lexeme, Body: stringPayload(body.Lexeme)}, nil
}

// stringPayload strips exactly one quote from each end of a string lexeme
// and trims surrounding whitespace. The remainder is opaque text.
func stringPayload(lexeme string) string {
	return strings.TrimSpace(lexeme[1 : len(lexeme)-1])
}
