// Package fieldfile parses .field files, the textual format for custom
// field profiles. A file declares one or more profiles as nested blocks
// of dimensions; parsed declarations map onto field.Profile values.
package fieldfile

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/pesislab/kentta/pkg/field"
)

// Parser parses .field profile files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new .field parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(FieldLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a .field file from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseString parses a .field file from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses a .field file from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// LoadProfiles parses a .field file and registers every profile it
// declares. Used by the CLI's --profile-file flag.
func LoadProfiles(filename string) ([]*field.Profile, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := parser.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	return f.ToProfiles()
}
