package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed kernel_aliases.yaml
var kernelAliasesYAML []byte

// Aliases is the kernel module alias table, parsed from the embedded
// kernel_aliases.yaml document on each LoadAliases call and implementing
// evaluator.AliasTable. Externalizing the table this way (rather than a
// hard-coded Go map) answers the open question of where the JsArray-style
// short names live (§9): in data, not code. The document is embedded at
// compile time, so a change to it takes effect after a rebuild.
type Aliases struct {
	table map[string]string
}

// LoadAliases parses the embedded kernel_aliases.yaml document. It panics
// on a malformed document since that document ships with the binary and a
// parse failure means the build itself is broken, not user input.
func LoadAliases() *Aliases {
	var table map[string]string
	if err := yaml.Unmarshal(kernelAliasesYAML, &table); err != nil {
		panic("config: malformed kernel_aliases.yaml: " + err.Error())
	}
	return &Aliases{table: table}
}

// Resolve implements evaluator.AliasTable: an alias maps to its canonical
// two-segment module path; anything absent from the table resolves to
// itself.
func (a *Aliases) Resolve(module string) string {
	if canonical, ok := a.table[module]; ok {
		return canonical
	}
	return module
}
