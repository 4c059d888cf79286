/*
File    : mylang/keywords/keywords.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package keywords parameterises the language's seven reserved-word
spellings as data (§6), instead of the teacher's hard-coded
KEYWORDS_MAP constant block in lexer/token.go. The default table
carries the native-script spellings the reference implementation
shipped with; an embedder may supply a YAML override file to run the
same evaluator against a different native-script rendering without
recompiling.
*/
package keywords

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Label names one of the seven semantic keyword roles from §6.
type Label string

const (
	Print  Label = "print"
	If     Label = "if"
	Else   Label = "else"
	While  Label = "while"
	Import Label = "import"
	Try    Label = "try"
	Catch  Label = "catch"
)

// Table maps each reserved spelling to the semantic label it stands
// for. It is built once at startup and handed to the lexer.
type Table struct {
	bySpelling map[string]Label
}

// Default returns the reference keyword table: the native-script
// spellings the original implementation used (打印, 如果, 否则, 循环,
// 导入, 尝试, 捕获), plus the interactive-mode terminator token 退出
// exposed separately as the Quit constant.
func Default() *Table {
	return &Table{
		bySpelling: map[string]Label{
			"打印": Print,
			"如果": If,
			"否则": Else,
			"循环": While,
			"导入": Import,
			"尝试": Try,
			"捕获": Catch,
		},
	}
}

// Quit is the interactive-mode terminator token from §6: typing it
// alone on a line ends line accumulation and runs the buffered
// program. It is not a lexical keyword (it never appears inside a
// program) so it is not part of Table.
const Quit = "退出"

// Lookup reports the semantic label bound to spelling, if any.
func (t *Table) Lookup(spelling string) (Label, bool) {
	label, ok := t.bySpelling[spelling]
	return label, ok
}

// spec is the YAML override file's shape: one field per semantic
// label, each holding the native-script spelling to bind to it.
type spec struct {
	Print  string `yaml:"print"`
	If     string `yaml:"if"`
	Else   string `yaml:"else"`
	While  string `yaml:"while"`
	Import string `yaml:"import"`
	Try    string `yaml:"try"`
	Catch  string `yaml:"catch"`
}

// LoadFile reads a YAML keyword-table override from path and returns
// the resulting Table. Every one of the seven fields must be present
// and non-empty; this is an all-or-nothing override, not a partial
// patch, so a malformed file fails loudly instead of silently falling
// back to defaults for the missing entries.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s spec
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	entries := map[Label]string{
		Print:  s.Print,
		If:     s.If,
		Else:   s.Else,
		While:  s.While,
		Import: s.Import,
		Try:    s.Try,
		Catch:  s.Catch,
	}
	table := &Table{bySpelling: make(map[string]Label, len(entries))}
	for label, spelling := range entries {
		if spelling == "" {
			return nil, &missingEntryError{label: label}
		}
		table.bySpelling[spelling] = label
	}
	return table, nil
}

type missingEntryError struct {
	label Label
}

func (e *missingEntryError) Error() string {
	return "keyword table override is missing an entry for '" + string(e.label) + "'"
}
