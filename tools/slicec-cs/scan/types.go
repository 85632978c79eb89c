// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scan

import (
	"strings"
	"text/scanner"

	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
	"github.com/pkg/errors"
)

// resolver maps the names declared by one file to their types.
type resolver struct {
	module string
	types  map[string]grammar.Type
}

func newResolver(module string) *resolver {
	return &resolver{module: module, types: map[string]grammar.Type{}}
}

func (r *resolver) declare(name string, t grammar.Type) error {
	if name == "" {
		return errors.New("definition with no name")
	}
	if _, found := r.types[name]; found || grammar.FindPrimitive(name) != grammar.InvalidPrimitive {
		return errors.Wrap(ErrDuplicate, name)
	}
	r.types[name] = t
	return nil
}

// lookup finds a type by its bare or module scoped name.
func (r *resolver) lookup(name string) (grammar.Type, error) {
	name = strings.TrimPrefix(name, "::")
	if rest := strings.TrimPrefix(name, r.module+"::"); rest != name {
		name = rest
	}
	if t, found := r.types[name]; found {
		return t, nil
	}
	return nil, errors.Wrap(ErrUnresolved, name)
}

// parse reads a Slice type string such as "dictionary<string, Point?>".
//
//	ref  = base ["?"]
//	base = "sequence" "<" ref ">"
//	     | "dictionary" "<" ref "," ref ">"
//	     | ["::"] ident {"::" ident}
func (r *resolver) parse(text string) (grammar.TypeRef, error) {
	p := &typeParser{r: r, text: text}
	p.s.Init(strings.NewReader(text))
	p.s.Mode = scanner.ScanIdents
	p.s.Error = func(_ *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = errors.Wrapf(ErrSyntax, "%q: %s", text, msg)
		}
	}
	p.next()
	ref := p.ref()
	if p.err == nil && p.tok != scanner.EOF {
		p.fail("unexpected %q", p.s.TokenText())
	}
	if p.err != nil {
		return grammar.TypeRef{}, p.err
	}
	return ref, nil
}

type typeParser struct {
	r    *resolver
	text string
	s    scanner.Scanner
	tok  rune
	err  error
}

func (p *typeParser) next() { p.tok = p.s.Scan() }

func (p *typeParser) fail(format string, args ...interface{}) {
	if p.err == nil {
		p.err = errors.Wrapf(ErrSyntax, "%q: "+format, append([]interface{}{p.text}, args...)...)
	}
}

func (p *typeParser) expect(r rune) {
	if p.tok != r {
		if p.tok == scanner.EOF {
			p.fail("expected %q at end", r)
		} else {
			p.fail("expected %q, got %q", r, p.s.TokenText())
		}
		return
	}
	p.next()
}

func (p *typeParser) ref() grammar.TypeRef {
	t := p.base()
	if p.err != nil {
		return grammar.TypeRef{}
	}
	out := grammar.TypeRef{Type: t}
	if p.tok == '?' {
		out.Optional = true
		p.next()
	}
	return out
}

func (p *typeParser) scope() {
	p.expect(':')
	p.expect(':')
}

func (p *typeParser) ident() string {
	if p.tok != scanner.Ident {
		if p.tok == scanner.EOF {
			p.fail("expected a type name at end")
		} else {
			p.fail("expected a type name, got %q", p.s.TokenText())
		}
		return ""
	}
	name := p.s.TokenText()
	p.next()
	return name
}

func (p *typeParser) base() grammar.Type {
	scoped := p.tok == ':'
	if scoped {
		p.scope()
	}
	parts := []string{p.ident()}
	for p.err == nil && p.tok == ':' {
		p.scope()
		parts = append(parts, p.ident())
	}
	if p.err != nil {
		return nil
	}
	name := strings.Join(parts, "::")
	if !scoped && len(parts) == 1 {
		switch name {
		case "sequence":
			p.expect('<')
			element := p.ref()
			p.expect('>')
			return &grammar.Sequence{Element: element}
		case "dictionary":
			p.expect('<')
			key := p.ref()
			p.expect(',')
			value := p.ref()
			p.expect('>')
			return &grammar.Dictionary{Key: key, Value: value}
		case "ServiceAddress":
			return grammar.ServiceAddress{}
		}
		if prim := grammar.FindPrimitive(name); prim != grammar.InvalidPrimitive {
			return prim
		}
	}
	if name == "IceRpc::ServiceAddress" {
		return grammar.ServiceAddress{}
	}
	t, err := p.r.lookup(name)
	if err != nil {
		p.err = err
		return nil
	}
	return t
}
