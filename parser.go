package sf

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/WyriHaximus/http-structured-fields/internal/ascii"
)

// ParseItem parses a single structured-field Item from its textual form.
func ParseItem(data []byte) (Item, error) {
	s, err := newTopLevelScanner(data)
	if err != nil {
		return Item{}, err
	}
	it, err := parseItem(s)
	if err != nil {
		return Item{}, err
	}
	return it, finishTopLevel(s)
}

// ParseList parses a structured-field List from its textual form.
func ParseList(data []byte) (List, error) {
	s, err := newTopLevelScanner(data)
	if err != nil {
		return List{}, err
	}
	if s.Done() {
		return List{}, nil
	}
	members, err := parseMemberSequence(s)
	if err != nil {
		return List{}, err
	}
	return NewList(members...), finishTopLevel(s)
}

// ParseDictionary parses a structured-field Dictionary from its textual form.
func ParseDictionary(data []byte) (Dictionary, error) {
	s, err := newTopLevelScanner(data)
	if err != nil {
		return Dictionary{}, err
	}
	if s.Done() {
		return Dictionary{}, nil
	}
	var dict Dictionary
	for {
		key, err := parseKey(s)
		if err != nil {
			return Dictionary{}, err
		}
		var member Member
		if s.Peek() == '=' {
			s.Advance()
			member, err = parseMember(s)
			if err != nil {
				return Dictionary{}, err
			}
		} else {
			params, err := parseParameters(s)
			if err != nil {
				return Dictionary{}, err
			}
			member = NewItem(Boolean(true), params)
		}
		dict, err = dict.Add(key, member)
		if err != nil {
			return Dictionary{}, wrapSyntaxError(s.Pos(), "invalid dictionary key", err)
		}
		s.SkipSpaces()
		if s.Done() || s.Peek() != ',' {
			break
		}
		s.Advance()
		s.SkipSpaces()
		if s.Done() {
			return Dictionary{}, newSyntaxError(s.Pos(), "trailing comma")
		}
	}
	return dict, finishTopLevel(s)
}

// ParseItemLines joins multiple raw header-line values (as delivered by an
// HTTP stack that folds repeated fields into a []string) and parses the
// result as a single Item.
func ParseItemLines(lines []string) (Item, error) {
	return ParseItem([]byte(joinLines(lines)))
}

// ParseListLines joins multiple raw header-line values and parses the
// result as a single List.
func ParseListLines(lines []string) (List, error) {
	return ParseList([]byte(joinLines(lines)))
}

// ParseDictionaryLines joins multiple raw header-line values and parses
// the result as a single Dictionary.
func ParseDictionaryLines(lines []string) (Dictionary, error) {
	return ParseDictionary([]byte(joinLines(lines)))
}

func joinLines(lines []string) string {
	nonEmpty := make([]string, 0, len(lines))
	for _, l := range lines {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			nonEmpty = append(nonEmpty, trimmed)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// newTopLevelScanner strips leading/trailing SP and rejects any byte
// outside the restricted ASCII subset the grammar permits before parsing begins.
func newTopLevelScanner(data []byte) (*ascii.Scanner, error) {
	for i, b := range data {
		if !ascii.IsPrint(b) && b != ' ' {
			return nil, newSyntaxError(i, "byte outside permitted ASCII range")
		}
	}
	trimmed := strings.Trim(string(data), " ")
	s := ascii.NewScanner([]byte(trimmed))
	return s, nil
}

// finishTopLevel verifies there is no unconsumed trailing input.
func finishTopLevel(s *ascii.Scanner) error {
	s.SkipSpaces()
	if !s.Done() {
		return newSyntaxError(s.Pos(), "unexpected trailing characters")
	}
	return nil
}

func parseMemberSequence(s *ascii.Scanner) ([]Member, error) {
	var members []Member
	for {
		m, err := parseMember(s)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
		s.SkipSpaces()
		if s.Done() || s.Peek() != ',' {
			break
		}
		s.Advance()
		s.SkipSpaces()
		if s.Done() {
			return nil, newSyntaxError(s.Pos(), "trailing comma")
		}
	}
	return members, nil
}

func parseMember(s *ascii.Scanner) (Member, error) {
	s.SkipSpaces()
	if s.Done() {
		return nil, newSyntaxError(s.Pos(), "unexpected end of input")
	}
	if s.Peek() == '(' {
		return parseInnerList(s)
	}
	return parseItem(s)
}

func parseInnerList(s *ascii.Scanner) (InnerList, error) {
	if s.Peek() != '(' {
		return InnerList{}, newSyntaxError(s.Pos(), "expected '('")
	}
	s.Advance()
	var items []Item
	for {
		s.SkipSpaces()
		if s.Done() {
			return InnerList{}, newSyntaxError(s.Pos(), "unterminated inner list")
		}
		if s.Peek() == ')' {
			s.Advance()
			break
		}
		it, err := parseItem(s)
		if err != nil {
			return InnerList{}, err
		}
		items = append(items, it)
		if s.Done() {
			return InnerList{}, newSyntaxError(s.Pos(), "unterminated inner list")
		}
		if s.Peek() != ' ' && s.Peek() != ')' {
			return InnerList{}, newSyntaxError(s.Pos(), "expected space or ')' between inner list items")
		}
	}
	params, err := parseParameters(s)
	if err != nil {
		return InnerList{}, err
	}
	return NewInnerList(items, params), nil
}

func parseItem(s *ascii.Scanner) (Item, error) {
	bare, err := parseBareItem(s)
	if err != nil {
		return Item{}, err
	}
	params, err := parseParameters(s)
	if err != nil {
		return Item{}, err
	}
	return NewItem(bare, params), nil
}

func parseParameters(s *ascii.Scanner) (Parameters, error) {
	var params Parameters
	for {
		if s.Done() || s.Peek() != ';' {
			return params, nil
		}
		s.Advance()
		s.SkipSpaces()
		key, err := parseKey(s)
		if err != nil {
			return Parameters{}, err
		}
		var value BareItem = Boolean(true)
		if !s.Done() && s.Peek() == '=' {
			s.Advance()
			value, err = parseBareItem(s)
			if err != nil {
				return Parameters{}, err
			}
		}
		params, err = params.Add(key, value)
		if err != nil {
			return Parameters{}, wrapSyntaxError(s.Pos(), "invalid parameter key", err)
		}
	}
}

func parseKey(s *ascii.Scanner) (string, error) {
	if s.Done() || !ascii.IsKeyStart(s.Peek()) {
		return "", newSyntaxError(s.Pos(), "expected key (lcalpha or '*')")
	}
	start := s.Pos()
	for !s.Done() && ascii.IsKeyChar(s.Peek()) {
		s.Advance()
	}
	return string(s.Slice(start, s.Pos())), nil
}

func parseBareItem(s *ascii.Scanner) (BareItem, error) {
	if s.Done() {
		return nil, newSyntaxError(s.Pos(), "unexpected end of input")
	}
	switch c := s.Peek(); {
	case c == '-' || ascii.IsDigit(c):
		return parseNumber(s)
	case c == '"':
		return parseQuotedString(s)
	case c == ':':
		return parseByteSequenceLiteral(s)
	case c == '?':
		return parseBooleanLiteral(s)
	case c == '@':
		return parseDateLiteral(s)
	case c == '%':
		return parseDisplayStringLiteral(s)
	case ascii.IsTokenStart(c):
		return parseTokenLiteral(s)
	default:
		return nil, newSyntaxError(s.Pos(), "unrecognized start of bare item")
	}
}

func parseNumber(s *ascii.Scanner) (BareItem, error) {
	start := s.Pos()
	negative := false
	if s.Peek() == '-' {
		negative = true
		s.Advance()
	}
	if s.Done() || !ascii.IsDigit(s.Peek()) {
		return nil, newSyntaxError(s.Pos(), "expected digit")
	}
	var intDigits strings.Builder
	for !s.Done() && ascii.IsDigit(s.Peek()) {
		if intDigits.Len() == 16 {
			return nil, newSyntaxError(start, "too many integer digits")
		}
		intDigits.WriteByte(s.Take())
	}
	if s.Done() || s.Peek() != '.' {
		if intDigits.Len() > 15 {
			return nil, newSyntaxError(start, "integer has more than 15 digits")
		}
		n, err := strconv.ParseInt(intDigits.String(), 10, 64)
		if err != nil {
			return nil, wrapSyntaxError(start, "invalid integer", err)
		}
		if negative {
			n = -n
		}
		return NewInteger(n)
	}
	if intDigits.Len() > 12 {
		return nil, newSyntaxError(start, "decimal integer part has more than 12 digits")
	}
	s.Advance() // consume '.'
	var fracDigits strings.Builder
	for !s.Done() && ascii.IsDigit(s.Peek()) {
		if fracDigits.Len() == 3 {
			return nil, newSyntaxError(start, "decimal has more than 3 fractional digits")
		}
		fracDigits.WriteByte(s.Take())
	}
	if fracDigits.Len() == 0 {
		return nil, newSyntaxError(s.Pos(), "expected fractional digit after '.'")
	}
	intPart, err := strconv.ParseUint(intDigits.String(), 10, 64)
	if err != nil {
		return nil, wrapSyntaxError(start, "invalid decimal integer part", err)
	}
	return NewDecimal(negative, intPart, fracDigits.String())
}

func parseQuotedString(s *ascii.Scanner) (BareItem, error) {
	start := s.Pos()
	s.Advance() // consume opening quote
	var sb strings.Builder
	for {
		if s.Done() {
			return nil, newSyntaxError(start, "unterminated string")
		}
		c := s.Take()
		switch {
		case c == '"':
			return String(sb.String()), nil
		case c == '\\':
			if s.Done() {
				return nil, newSyntaxError(s.Pos(), "unterminated escape sequence")
			}
			next := s.Take()
			if next != '"' && next != '\\' {
				return nil, newSyntaxError(s.Pos()-1, "invalid escape sequence")
			}
			sb.WriteByte(next)
		case !ascii.IsPrint(c):
			return nil, newSyntaxError(s.Pos()-1, "invalid character in string")
		default:
			sb.WriteByte(c)
		}
	}
}

func parseTokenLiteral(s *ascii.Scanner) (BareItem, error) {
	start := s.Pos()
	s.Advance()
	for !s.Done() && ascii.IsTokenChar(s.Peek()) {
		s.Advance()
	}
	return Token(s.Slice(start, s.Pos())), nil
}

func parseByteSequenceLiteral(s *ascii.Scanner) (BareItem, error) {
	start := s.Pos()
	s.Advance() // consume leading ':'
	contentStart := s.Pos()
	for !s.Done() && s.Peek() != ':' {
		if !ascii.IsBase64Char(s.Peek()) {
			return nil, newSyntaxError(s.Pos(), "invalid base64 character")
		}
		s.Advance()
	}
	if s.Done() {
		return nil, newSyntaxError(start, "unterminated byte sequence")
	}
	encoded := string(s.Slice(contentStart, s.Pos()))
	s.Advance() // consume trailing ':'
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, wrapSyntaxError(contentStart, "invalid base64 content", errors.Wrap(err, "base64.Decode"))
	}
	return NewByteSequence(decoded), nil
}

func parseBooleanLiteral(s *ascii.Scanner) (BareItem, error) {
	start := s.Pos()
	s.Advance() // consume '?'
	if s.Done() {
		return nil, newSyntaxError(start, "unterminated boolean")
	}
	switch s.Take() {
	case '0':
		return Boolean(false), nil
	case '1':
		return Boolean(true), nil
	default:
		return nil, newSyntaxError(start, "boolean must be '?0' or '?1'")
	}
}

func parseDateLiteral(s *ascii.Scanner) (BareItem, error) {
	start := s.Pos()
	s.Advance() // consume '@'
	n, err := parseNumber(s)
	if err != nil {
		return nil, err
	}
	integer, ok := n.(Integer)
	if !ok {
		return nil, newSyntaxError(start, "date value must be an integer")
	}
	return NewDate(integer.Int64())
}

func parseDisplayStringLiteral(s *ascii.Scanner) (BareItem, error) {
	start := s.Pos()
	s.Advance() // consume '%'
	if s.Done() || s.Peek() != '"' {
		return nil, newSyntaxError(s.Pos(), "expected '\"' after '%' in display string")
	}
	s.Advance() // consume opening quote
	var raw []byte
	for {
		if s.Done() {
			return nil, newSyntaxError(start, "unterminated display string")
		}
		c := s.Take()
		switch {
		case c == '"':
			if !utf8.Valid(raw) {
				return nil, newSyntaxError(start, "display string is not valid UTF-8")
			}
			return DisplayString(raw), nil
		case c == '%':
			if s.Pos()+2 > s.Len() {
				return nil, newSyntaxError(s.Pos(), "incomplete percent-encoded byte")
			}
			hi, lo := s.Take(), s.Take()
			v, err := strconv.ParseUint(string([]byte{hi, lo}), 16, 8)
			if err != nil {
				return nil, wrapSyntaxError(s.Pos()-2, "invalid percent-encoded hex digits", err)
			}
			raw = append(raw, byte(v))
		case !ascii.IsPrint(c):
			return nil, newSyntaxError(s.Pos()-1, "invalid character in display string")
		default:
			raw = append(raw, c)
		}
	}
}
