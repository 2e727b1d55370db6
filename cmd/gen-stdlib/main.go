// Command gen-stdlib is the build-time code-generation tool named in §1's
// "Code generation of stdlib stubs". Kernel primitives (internal/kernel)
// have no surface-language name until some module imports
// `Elm.Kernel.<Module>` and forwards to them by name (§4.8); rather than
// hand-writing that one-line forwarding function for every kernel entry,
// this tool reads a small declarative table of kernel modules and emits
// a Go source file holding each one's forwarding surface-source text as a
// string constant, run through golang.org/x/tools/imports the way the
// teacher's internal/ext/codegen.go formats its generated binding files.
package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// kernelFn describes one kernel-registered primitive this tool forwards
// a surface-language name to, mirroring internal/kernel's registerBasics
// /registerList/etc. tables (module, name, arity) without needing to
// import internal/kernel itself (this standalone generator keeps its own
// static table rather than reflecting over the registry).
type kernelFn struct {
	Name  string
	Arity int
}

var stdlibModules = map[string][]kernelFn{
	"Basics": {
		{"add", 2}, {"sub", 2}, {"mul", 2}, {"fdiv", 2}, {"idiv", 2}, {"mod", 2}, {"pow", 2},
		{"lt", 2}, {"gt", 2}, {"le", 2}, {"ge", 2}, {"eq", 2}, {"neq", 2}, {"append", 2},
		{"not", 1}, {"identity", 1},
	},
	"List": {
		{"cons", 2}, {"isEmpty", 1}, {"length", 1}, {"reverse", 1}, {"append", 2},
		{"map", 2}, {"filter", 2}, {"foldl", 3}, {"foldr", 3}, {"head", 1},
		{"tail", 1}, {"member", 2}, {"sort", 1},
	},
	"String": {
		{"length", 1}, {"isEmpty", 1}, {"toUpper", 1}, {"toLower", 1}, {"trim", 1},
		{"append", 2}, {"fromInt", 1}, {"fromFloat", 1}, {"toInt", 1}, {"toFloat", 1},
		{"split", 2}, {"join", 2}, {"toList", 1},
	},
	"Char": {
		{"toUpper", 1}, {"toLower", 1}, {"isDigit", 1}, {"isAlpha", 1}, {"toCode", 1}, {"fromCode", 1},
	},
	"Tuple": {
		{"first", 1}, {"second", 1}, {"pair", 2},
	},
	"Record": {
		{"equal", 2},
	},
	"Uuid": {
		{"generate", 1}, {"isValid", 1},
	},
}

func paramArgs(arity int) string {
	if arity == 0 {
		return ""
	}
	names := make([]string, arity)
	for i := range names {
		names[i] = fmt.Sprintf("a%d", i+1)
	}
	return strings.Join(names, " ")
}

const moduleDeclTemplate = `package stdlib

// Generated by cmd/gen-stdlib. Do not edit by hand.

// Source{{.Name}} is the surface-language source of the {{.Name}} stdlib
// module: one forwarding declaration per kernel primitive.
const Source{{.Name}} = ` + "`" + `module {{.Name}} exposing (..)
{{range .Fns}}
{{paramNames .Arity .Name}} = Elm.Kernel.{{$.Name}}.{{.Name}}{{if gt .Arity 0}} {{paramArgsOnly .Arity}}{{end}}
{{end}}` + "`" + `
`

func main() {
	outDir := "internal/stdlib"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "gen-stdlib: %s\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(stdlibModules))
	for name := range stdlibModules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		src, err := renderModule(name, stdlibModules[name])
		if err != nil {
			fmt.Fprintf(os.Stderr, "gen-stdlib: rendering %s: %s\n", name, err)
			os.Exit(1)
		}

		formatted, err := imports.Process(fmt.Sprintf("%s/%s_stub.go", outDir, strings.ToLower(name)), []byte(src), nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gen-stdlib: formatting %s: %s\n", name, err)
			os.Exit(1)
		}

		path := fmt.Sprintf("%s/%s_stub.go", outDir, strings.ToLower(name))
		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "gen-stdlib: writing %s: %s\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

func renderModule(name string, fns []kernelFn) (string, error) {
	sorted := append([]kernelFn(nil), fns...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	funcs := template.FuncMap{
		"paramNames": func(arity int, name string) string {
			args := paramArgs(arity)
			if args == "" {
				return name
			}
			return name + " " + args
		},
		"paramArgsOnly": paramArgs,
	}

	tmpl, err := template.New("stdlib").Funcs(funcs).Parse(moduleDeclTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := struct {
		Name string
		Fns  []kernelFn
	}{Name: name, Fns: sorted}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
