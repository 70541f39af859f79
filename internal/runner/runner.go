// Package runner orchestrates a generation run: extract the schema, bind
// one generator per non-identity column, and render the output.
package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AleLoredo/datagen/internal/classify"
	"github.com/AleLoredo/datagen/internal/emit"
	"github.com/AleLoredo/datagen/internal/generate"
	"github.com/AleLoredo/datagen/internal/models"
	"github.com/AleLoredo/datagen/internal/schema"
)

// ErrTableNotFound is returned when neither extraction pass finds the
// requested table. It must surface before any output file or database
// side effect is produced.
var ErrTableNotFound = errors.New("table not found in script")

// Options configures a generation or inspection run.
type Options struct {
	Script    string // raw DDL text
	Engine    string // oracle | mssql | postgresql | mysql
	Table     string
	Rows      int
	Database  string            // override; empty = detect from the script
	Seed      int64             // 0 = time-based
	Overrides map[string]string // column name -> classifier rule name
}

// Inspect extracts the schema and database context without generating rows.
func Inspect(opts Options) (*models.Report, error) {
	cols := schema.Extract(opts.Script, opts.Table)
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %q: %w", opts.Table, ErrTableNotFound)
	}

	report := models.NewReport(opts.Engine, opts.Table, cols)
	report.Rows = opts.Rows
	report.Database = opts.Database
	if report.Database == "" {
		report.Database = schema.DetectDatabase(opts.Script)
	}
	return report, nil
}

type binding struct {
	column string
	fn     generate.ValueFunc
}

// buildBindings assigns one generator per non-identity column, in
// declaration order. Overrides replace the classifier's pick by rule name.
func buildBindings(report *models.Report, opts Options, src *generate.Source) ([]binding, error) {
	var bindings []binding
	for _, c := range report.GeneratedColumns() {
		if ruleName, ok := opts.Overrides[c.Name]; ok {
			rule, found := classify.RuleByName(ruleName)
			if !found {
				return nil, fmt.Errorf("column %s: unknown rule %q", c.Name, ruleName)
			}
			bindings = append(bindings, binding{column: c.Name, fn: rule.Bind(src)})
			continue
		}
		bindings = append(bindings, binding{column: c.Name, fn: classify.Classify(c.Name, c.DataType, src)})
	}
	return bindings, nil
}

// Statements generates the bare INSERT statements, one per row. Used by the
// seed command; Run wraps the same statements in dump boilerplate.
func Statements(opts Options) (*models.Report, []string, error) {
	if !emit.KnownEngine(opts.Engine) {
		return nil, nil, fmt.Errorf("unknown engine %q", opts.Engine)
	}

	report, err := Inspect(opts)
	if err != nil {
		return nil, nil, err
	}

	src := generate.NewSource(opts.Seed)
	bindings, err := buildBindings(report, opts, src)
	if err != nil {
		return nil, nil, err
	}
	if len(bindings) == 0 {
		return nil, nil, fmt.Errorf("table %q has no generatable columns", opts.Table)
	}

	columns := make([]string, len(bindings))
	for i, b := range bindings {
		columns[i] = b.column
	}

	stmts := make([]string, 0, opts.Rows)
	for i := 0; i < opts.Rows; i++ {
		literals := make([]string, len(bindings))
		for j, b := range bindings {
			literals[j] = emit.FormatValue(b.fn(), opts.Engine)
		}
		stmts = append(stmts, emit.InsertStatement(opts.Table, columns, literals))
	}

	return report, stmts, nil
}

// Run produces the complete dump text: header, database context, engine
// preamble, rows, engine postamble.
func Run(opts Options) (*models.Report, string, error) {
	report, stmts, err := Statements(opts)
	if err != nil {
		return nil, "", err
	}

	var b strings.Builder
	b.WriteString(emit.DumpHeader(opts.Table, opts.Engine, report.IdentityNames()))
	if report.Database != "" {
		b.WriteString(emit.UseStatement(report.Database, opts.Engine))
	}
	b.WriteString(emit.Preamble(opts.Engine))
	for _, s := range stmts {
		b.WriteString(s)
	}
	b.WriteString(emit.Postamble(opts.Engine))

	return report, b.String(), nil
}
