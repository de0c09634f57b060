package optgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Generator renders the option storage, enum types, accessors and tables for a registry
type Generator struct {
	PackageName string
	Registry    *Registry
	// Source is recorded in the header comment
	Source string
}

// GeneratorOption is a function that configures Generator
type GeneratorOption func(*Generator)

// WithPackageName overrides the package declared in the registry
func WithPackageName(name string) GeneratorOption {
	return func(g *Generator) {
		if name != "" {
			g.PackageName = name
		}
	}
}

// WithSource sets the registry file name written in the header
func WithSource(source string) GeneratorOption {
	return func(g *Generator) {
		g.Source = source
	}
}

// New creates a new Generator
func New(registry *Registry, opts ...GeneratorOption) *Generator {
	g := &Generator{
		PackageName: registry.Package,
		Registry:    registry,
		Source:      "langoptions.yaml",
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

type templateData struct {
	Package    string
	Source     string
	Enums      []Enum
	Options    []Option
	EnumOpts   []Option
	Benign     []Option
	Extensions []Extension
}

// Generate writes gofmt-ed Go source to w
func (g *Generator) Generate(w io.Writer) error {
	data := templateData{
		Package:    g.PackageName,
		Source:     g.Source,
		Enums:      g.Registry.Enums,
		Options:    g.Registry.Options,
		Benign:     g.Registry.BenignOptions(),
		Extensions: g.Registry.Extensions,
	}

	for _, o := range g.Registry.Options {
		if o.IsEnum() {
			data.EnumOpts = append(data.EnumOpts, o)
		}
	}

	tmpl, err := template.New("langopts").Funcs(template.FuncMap{
		"lowerFirst":  lowerFirst,
		"extensionID": extensionIdentifier,
		"quote":       func(s string) string { return fmt.Sprintf("%q", s) },
		"rawValue":    rawValueExpr,
		"describe":    describe,
	}).Parse(goTemplate)
	if err != nil {
		return fmt.Errorf("%w: failed to parse template: %w", ErrGenerateCode, err)
	}

	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: failed to execute template: %w", ErrGenerateCode, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: failed to format generated code: %w", ErrGenerateCode, err)
	}

	_, err = w.Write(formatted)

	return err
}

// lowerFirst lowercases the leading run of capitals so acronyms stay readable
// (GC -> gc, DefaultFPContractMode -> defaultFPContractMode)
func lowerFirst(s string) string {
	runes := []rune(s)

	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	switch {
	case upper == 0:
		return s
	case upper == len(runes):
		return strings.ToLower(s)
	case upper > 1:
		// keep the capital that starts the next word
		upper--
	}

	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// extensionIdentifier converts cl_khr_fp64 into ClKhrFp64
func extensionIdentifier(name string) string {
	caser := cases.Title(language.English)

	words := strings.Split(name, "_")
	for i, word := range words {
		words[i] = caser.String(word)
	}

	return strings.Join(words, "")
}

// rawValueExpr renders the uint64 conversion of a storage field
func rawValueExpr(o Option) string {
	switch o.GoType() {
	case "bool":
		return "boolBits(b." + o.FieldName() + ")"
	default:
		return "uint64(b." + o.FieldName() + ")"
	}
}

func describe(o Option) string {
	if o.Description == "" {
		return o.Name
	}

	return o.Description
}

const goTemplate = `// Code generated by langoptgen from {{ .Source }}. DO NOT EDIT.

package {{ .Package }}
{{ if .Enums }}
import "fmt"
{{ end -}}
{{ range $e := .Enums }}
{{ if $e.Doc }}// {{ $e.Doc }}
{{ end -}}
type {{ $e.Name }} uint8

const (
{{- range $i, $v := $e.Values }}
	{{ if $v.Doc }}// {{ $v.Doc }}
	{{ end -}}
	{{ $v.Name }}{{ if eq $i 0 }} {{ $e.Name }} = iota{{ end }}
{{- end }}
)

var {{ lowerFirst $e.Name }}Names = [...]string{
{{- range $e.Values }}
	{{ quote .Name }},
{{- end }}
}

// String returns the enumerator name
func (v {{ $e.Name }}) String() string {
	if v.IsValid() {
		return {{ lowerFirst $e.Name }}Names[v]
	}

	return fmt.Sprintf("{{ $e.Name }}(%d)", uint8(v))
}

// IsValid reports whether v is a declared enumerator
func (v {{ $e.Name }}) IsValid() bool {
	return int(v) < len({{ lowerFirst $e.Name }}Names)
}
{{ end }}
// Base holds every language option by value. It is comparable and is copied,
// reset and compared by plain assignment. Enum options are reachable only
// through their accessor pairs.
//
// Declared widths are advisory for plain integer fields: a field is stored in
// the smallest unsigned type that holds its width and is not masked, so
// callers must keep values below 1<<Bits as reported by LookupOption.
type Base struct {
{{- range .Options }}
	{{ .FieldName }} {{ .GoType }} // {{ describe . }}
{{- end }}
}

// DefaultBase returns the options at their documented defaults
func DefaultBase() Base {
	return Base{
{{- range .Options }}
		{{ .FieldName }}: {{ .DefaultLiteral }},
{{- end }}
	}
}
{{ range .EnumOpts }}
// {{ .Name }} returns the {{ describe . }}
func (b *Base) {{ .Name }}() {{ .Type }} {
	return b.{{ .FieldName }}
}

// Set{{ .Name }} sets the {{ describe . }}. It panics on an undeclared {{ .Type }}.
func (b *Base) Set{{ .Name }}(value {{ .Type }}) {
	if !value.IsValid() {
		panic(fmt.Sprintf("langopts: Set{{ .Name }}: invalid {{ .Type }} %d", uint8(value)))
	}

	b.{{ .FieldName }} = value
}
{{ end }}
// resetBenign restores every option that does not affect module compatibility
func (b *Base) resetBenign() {
{{- if .Benign }}
	d := DefaultBase()
{{- end }}
{{- range .Benign }}
	b.{{ .FieldName }} = d.{{ .FieldName }}
{{- end }}
}

// NumOptions is the number of registry entries
const NumOptions = {{ len .Options }}

var optionTable = [NumOptions]OptionInfo{
{{- range .Options }}
	{Name: {{ quote .Name }}, Bits: {{ .Bits }}, Default: {{ .DefaultValue }}, Kind: {{ if .IsEnum }}EnumOption{{ else }}PlainOption{{ end }}, Benign: {{ .Benign }}, Description: {{ quote (describe .) }}},
{{- end }}
}

// rawValues exposes the stored bits of every option in table order
func (b *Base) rawValues() [NumOptions]uint64 {
	return [NumOptions]uint64{
{{- range .Options }}
		{{ rawValue . }},
{{- end }}
	}
}

// Extension identifies an OpenCL extension
type Extension uint8

{{ if .Extensions -}}
const (
{{- range $i, $e := .Extensions }}
	{{ extensionID $e.Name }}{{ if eq $i 0 }} Extension = iota{{ end }}
{{- end }}

	// NumExtensions is the number of known extensions
	NumExtensions
)
{{- else -}}
// NumExtensions is the number of known extensions
const NumExtensions Extension = 0
{{- end }}

var extensionTable = [NumExtensions]extensionInfo{
{{- range .Extensions }}
	{name: {{ quote .Name }}, minVersion: {{ .MinVersion }}},
{{- end }}
}
`
