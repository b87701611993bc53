package gcode

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type mode int

const (
	// Default parsing mode.
	normal mode = iota
	table
	assign
	list
	element
	elementPar
	elementPreComma
	preComma
	end
)

func unquote(s string) (string, error) {
	if (!strings.HasPrefix(s, "\"")) || (!strings.HasSuffix(s, "\"")) {
		return "", errors.New("string is not quoted")
	}
	return strings.Trim(s, "\""), nil
}

func aNumMinus(b byte) bool {
	r := rune(b)
	return r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// asn1Split is a bufio.SplitFunc returning ASN.1 tokens: comments,
// "::=", quoted strings, braces, commas and identifiers.
func asn1Split(data []byte, atEOF bool) (int, []byte, error) {
	i := 0
	for ; i < len(data); i++ {
		if !unicode.IsSpace(rune(data[i])) {
			break
		}
	}
	data = data[i:]
	advance := i

	if len(data) == 0 {
		return advance, nil, nil
	}

	switch data[0] {
	case '-':
		if len(data) < 2 {
			if atEOF {
				return 0, nil, errors.New("unexpected end of file")
			}
			return advance, nil, nil
		}
		if data[1] == '-' {
			a, t, e := bufio.ScanLines(data, atEOF)
			return a + advance, t, e
		}
		return 0, nil, errors.New("unexpected character after '-'")
	case ':':
		if len(data) < 3 {
			if atEOF {
				return 0, nil, errors.New("unexpected end of file")
			}
			return advance, nil, nil
		}
		if data[1] == ':' && data[2] == '=' {
			return advance + 3, data[:3], nil
		}
		return 0, nil, errors.New("unexpected character after ':'")
	case '"':
		for i := 1; i < len(data); i++ {
			if data[i] == '"' {
				return advance + i + 1, data[:i+1], nil
			}
		}
		if !atEOF {
			return advance, nil, nil
		}
		return 0, nil, errors.New("unfinished string literal")
	case '{', '}', ',':
		return advance + 1, data[:1], nil
	}
	if aNumMinus(data[0]) {
		i := 1
		for ; i < len(data); i++ {
			if !aNumMinus(data[i]) {
				break
			}
		}
		if i == len(data) {
			if atEOF {
				return advance + i, data, nil
			}
			return advance, nil, nil
		}
		return advance + i, data[:i], nil
	}
	return 0, nil, errors.New("unknown token")
}

// ParseASN1 parses NCBI genetic codes file (gc.prt).
func ParseASN1(rd io.Reader) (res []*GeneticCode, err error) {
	scanner := bufio.NewScanner(rd)
	scanner.Split(asn1Split)

	m := normal

	var gc *GeneticCode
	var parName string

	for scanner.Scan() {
		text := scanner.Text()
		if strings.HasPrefix(text, "--") {
			continue
		}

		switch m {
		case normal:
			if text != "Genetic-code-table" {
				return nil, malformed("expecting 'Genetic-code-table'")
			}
			m = table
		case table:
			if text != "::=" {
				return nil, malformed("expecting '::='")
			}
			m = assign
		case assign:
			if text != "{" {
				return nil, malformed("expecting '{'")
			}
			m = list
		case list:
			switch text {
			case "{":
				gc = &GeneticCode{}
				m = element
			case "}":
				m = end
			default:
				return nil, malformed("expecting '{' or '}'")
			}
		case element:
			parName = text
			m = elementPar
		case elementPar:
			switch parName {
			case "name":
				uq, err := unquote(text)
				if err != nil {
					return nil, malformed(err.Error())
				}
				uq = strings.Replace(uq, "\n", "", -1)
				if gc.Name == "" {
					gc.Name = uq
				} else {
					gc.ShortName = uq
				}
			case "id":
				id, err := strconv.Atoi(text)
				if err != nil {
					return nil, malformed(err.Error())
				}
				gc.ID = id
			case "ncbieaa":
				code, err := unquote(text)
				if err != nil {
					return nil, malformed(err.Error())
				}
				gc.Ncbieaa = code
			case "sncbieaa":
				code, err := unquote(text)
				if err != nil {
					return nil, malformed(err.Error())
				}
				gc.Sncbieaa = code
			}
			m = elementPreComma
		case elementPreComma:
			switch text {
			case ",":
				m = element
			case "}":
				res = append(res, gc)
				m = preComma
			default:
				return nil, malformed("expecting ',' or '}'")
			}
		case preComma:
			switch text {
			case ",":
				m = list
			case "}":
				m = end
			default:
				return nil, malformed("expecting ',' or '}'")
			}
		case end:
			return nil, malformed("unexpected symbols at the end of file")
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	if m != end {
		return nil, malformed("unexpected end of stream")
	}

	log.Debugf("Parsed %d genetic codes", len(res))
	return
}
