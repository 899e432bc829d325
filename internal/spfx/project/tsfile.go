package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// TsFile is a TypeScript source file. The syntax tree is built on first use.
type TsFile struct {
	Path    string
	RelPath string
	Source  []byte

	once sync.Once
	tree *sitter.Tree
	err  error
}

// Position is a 1-based line and character location in a source file.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Import is one import statement of a source file.
type Import struct {
	Module   string
	Default  string
	Names    []string
	Text     string
	Position Position
}

// Match is a syntax node selected by a query over a source file.
type Match struct {
	Text     string
	Position Position
}

// NewTsFile wraps already loaded source.
func NewTsFile(path, relPath string, source []byte) *TsFile {
	return &TsFile{Path: path, RelPath: relPath, Source: source}
}

// Root returns the root node of the syntax tree, parsing the source once.
func (f *TsFile) Root() (*sitter.Node, error) {
	f.once.Do(func() {
		parser := sitter.NewParser()
		if strings.EqualFold(filepath.Ext(f.RelPath), ".tsx") {
			parser.SetLanguage(tsx.GetLanguage())
		} else {
			parser.SetLanguage(typescript.GetLanguage())
		}

		tree, err := parser.ParseCtx(context.Background(), nil, f.Source)
		if err != nil {
			f.err = fmt.Errorf("failed to parse %s: %w", f.RelPath, err)
			return
		}
		if tree == nil {
			f.err = fmt.Errorf("failed to parse %s", f.RelPath)
			return
		}
		f.tree = tree
	})
	if f.err != nil {
		return nil, f.err
	}
	return f.tree.RootNode(), nil
}

// Imports lists the import statements of the file in source order.
func (f *TsFile) Imports() ([]Import, error) {
	root, err := f.Root()
	if err != nil {
		return nil, err
	}

	var imports []Import
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "import_statement" {
			return true
		}
		if imp := f.processImportStatement(n); imp != nil {
			imports = append(imports, *imp)
		}
		return false
	})
	return imports, nil
}

// Find returns the outermost nodes of nodeType whose text contains substr.
// Nested matches inside a reported node are skipped.
func (f *TsFile) Find(nodeType, substr string) ([]Match, error) {
	root, err := f.Root()
	if err != nil {
		return nil, err
	}

	var matches []Match
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != nodeType {
			return true
		}
		text := n.Content(f.Source)
		if !strings.Contains(text, substr) {
			return true
		}
		matches = append(matches, Match{Text: text, Position: positionOf(n)})
		return false
	})
	return matches, nil
}

func (f *TsFile) processImportStatement(node *sitter.Node) *Import {
	imp := &Import{
		Text:     node.Content(f.Source),
		Position: positionOf(node),
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "import_clause":
			imp.Default, imp.Names = f.processImportClause(child)
		case "string":
			imp.Module = extractStringValue(child, f.Source)
		}
	}

	if imp.Module == "" {
		return nil
	}
	return imp
}

func (f *TsFile) processImportClause(node *sitter.Node) (string, []string) {
	var def string
	var names []string

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "identifier":
			// import foo from "module"
			def = child.Content(f.Source)
		case "namespace_import":
			// import * as foo from "module"
			for j := 0; j < int(child.ChildCount()); j++ {
				if id := child.Child(j); id.Type() == "identifier" {
					def = id.Content(f.Source)
				}
			}
		case "named_imports":
			for j := 0; j < int(child.ChildCount()); j++ {
				spec := child.Child(j)
				if spec.Type() != "import_specifier" {
					continue
				}
				if name := spec.ChildByFieldName("name"); name != nil {
					names = append(names, name.Content(f.Source))
				}
			}
		}
	}
	return def, names
}

// walk visits nodes depth first. Returning false from visit skips the
// children of the current node.
func walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil || !visit(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), visit)
	}
}

// extractStringValue removes quotes from string literals in syntax nodes.
func extractStringValue(node *sitter.Node, source []byte) string {
	text := string(source[node.StartByte():node.EndByte()])
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'' || text[0] == '`') {
		text = text[1 : len(text)-1]
	}
	return text
}

func positionOf(node *sitter.Node) Position {
	start := node.StartPoint()
	return Position{Line: int(start.Row) + 1, Character: int(start.Column) + 1}
}
