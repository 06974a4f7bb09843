package testutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/treedist/tree"
)

// ParseTree builds a fixture tree from a parenthesized literal such as
// "((A:1.0,B:1.0):2.0,(C,D));". Leaf names consist of letters, digits and
// "_.-"; lengths follow a colon; the trailing semicolon is optional.
//
// The rooted flag is inferred the way the upstream tree library does it:
// a tree is rooted when its root has exactly two children. Tests needing a
// different flag set t.Rooted directly.
func ParseTree(s string) (*tree.Tree, error) {
	p := &literalParser{s: s}
	t := tree.New(false)

	if err := p.node(t, t.Root); err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ';' {
		p.pos++
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("trailing input at offset %d in %q", p.pos, s)
	}

	t.Rooted = len(t.Nodes[t.Root].Children) == 2
	return t, nil
}

// MustParseTree is ParseTree for fixture literals known to be well-formed.
func MustParseTree(s string) *tree.Tree {
	t, err := ParseTree(s)
	if err != nil {
		panic(err)
	}
	return t
}

// MustParseTrees parses a batch of fixture literals.
func MustParseTrees(literals ...string) []*tree.Tree {
	trees := make([]*tree.Tree, len(literals))
	for i, s := range literals {
		trees[i] = MustParseTree(s)
	}
	return trees
}

type literalParser struct {
	s   string
	pos int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t' || p.s[p.pos] == '\n') {
		p.pos++
	}
}

// node parses one subtree into the already-allocated node idx.
func (p *literalParser) node(t *tree.Tree, idx int) error {
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == '(' {
		p.pos++
		for {
			child := t.Add(idx, "")
			if err := p.node(t, child); err != nil {
				return err
			}
			p.skipSpace()
			if p.pos >= len(p.s) {
				return fmt.Errorf("unterminated group in %q", p.s)
			}
			if p.s[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.s[p.pos] == ')' {
				p.pos++
				break
			}
			return fmt.Errorf("unexpected %q at offset %d in %q", p.s[p.pos], p.pos, p.s)
		}
	}

	t.Nodes[idx].Name = p.name()

	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ':' {
		p.pos++
		length, err := p.length()
		if err != nil {
			return err
		}
		t.SetLength(idx, length)
	}
	return nil
}

func (p *literalParser) name() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) && !strings.ContainsRune("(),:; \t\n", rune(p.s[p.pos])) {
		p.pos++
	}
	return p.s[start:p.pos]
}

func (p *literalParser) length() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) && !strings.ContainsRune("(),:; \t\n", rune(p.s[p.pos])) {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("bad branch length at offset %d in %q: %w", start, p.s, err)
	}
	return v, nil
}
