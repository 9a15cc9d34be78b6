package fixfft

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

// TableFormat identifies the YAML layout written by WriteTableYAML.
const TableFormat = "fixfft-twiddle/v1"

type tableFile struct {
	Format   string  `yaml:"format"`
	Strategy string  `yaml:"strategy"`
	MaxLog   int     `yaml:"maxlog"`
	QBits    int     `yaml:"qbits"`
	Values   []int32 `yaml:"values,flow"`
}

// WriteTableYAML encodes tbl as YAML.
func WriteTableYAML(w io.Writer, tbl Table) error {
	if tbl == nil {
		return fmt.Errorf("%w: nil table", ErrInvalidTable)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(newTableFile(tbl)); err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}

	return enc.Close()
}

// ReadTableYAML decodes a table written by WriteTableYAML.
func ReadTableYAML(r io.Reader) (Table, error) {
	var tf tableFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	if tf.Format != TableFormat {
		return nil, fmt.Errorf("%w: format %q, want %q", ErrInvalidTable, tf.Format, TableFormat)
	}

	if tf.QBits != QBits {
		return nil, fmt.Errorf("%w: qbits %d, want %d", ErrInvalidTable, tf.QBits, QBits)
	}

	strategy, err := ParseTwiddleStrategy(tf.Strategy)
	if err != nil {
		return nil, err
	}

	return LoadTable(tf.MaxLog, strategy, tf.Values)
}

// ExportTable saves tbl to a YAML file.
// The file can be loaded later with ImportTable.
func ExportTable(filename string, tbl Table) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create table file: %w", err)
	}

	defer file.Close()

	if err := WriteTableYAML(file, tbl); err != nil {
		return fmt.Errorf("failed to export table: %w", err)
	}

	return file.Close()
}

// ImportTable loads a table from a file produced by ExportTable.
func ImportTable(filename string) (Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}

	defer f.Close()

	tbl, err := ReadTableYAML(f)
	if err != nil {
		return nil, fmt.Errorf("failed to import table: %w", err)
	}

	return tbl, nil
}

var goTableTemplate = template.Must(template.New("table").
	Funcs(template.FuncMap{"mod": func(a, b int) int { return a % b }}).
	Parse(`// Code generated by fixfft table; DO NOT EDIT.

package {{.Package}}

import fixfft "github.com/cwbudde/algo-fixfft"

const (
	{{.Name}}MaxLog   = {{.MaxLog}}
	{{.Name}}Strategy = {{.StrategyConst}}
)

// {{.Name}} holds a {{.Strategy}} twiddle table for up to 2^{{.MaxLog}} points.
var {{.Name}} = []int32{
{{- range $i, $v := .Values}}{{if eq (mod $i 8) 0}}
{{end}}{{$v}}, {{end}}
}

// Load{{.Name}} rebuilds the table for use with fixfft.NewPlanWithTable.
func Load{{.Name}}() (fixfft.Table, error) {
	return fixfft.LoadTable({{.Name}}MaxLog, {{.Name}}Strategy, {{.Name}})
}
`))

// WriteTableGo writes a gofmt-formatted Go source file declaring tbl as an
// []int32 variable named name in package pkg.
func WriteTableGo(w io.Writer, pkg, name string, tbl Table) error {
	if tbl == nil {
		return fmt.Errorf("%w: nil table", ErrInvalidTable)
	}

	tf := newTableFile(tbl)

	strategyConst := "fixfft.TwiddleAccuracy"
	if tbl.Strategy() == TwiddleSize {
		strategyConst = "fixfft.TwiddleSize"
	}

	var buf bytes.Buffer

	err := goTableTemplate.Execute(&buf, map[string]any{
		"Package":       pkg,
		"Name":          name,
		"Strategy":      tf.Strategy,
		"StrategyConst": strategyConst,
		"MaxLog":        tf.MaxLog,
		"Values":        tf.Values,
	})
	if err != nil {
		return fmt.Errorf("failed to render table source: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format table source: %w", err)
	}

	_, err = w.Write(src)

	return err
}

func newTableFile(tbl Table) tableFile {
	values := tbl.Values()
	raw := make([]int32, len(values))

	for i, v := range values {
		raw[i] = int32(v)
	}

	return tableFile{
		Format:   TableFormat,
		Strategy: tbl.Strategy().String(),
		MaxLog:   tbl.MaxLog(),
		QBits:    QBits,
		Values:   raw,
	}
}
