package output

import (
	"fmt"
	"strconv"

	"github.com/ajxudir/workspaces/pkg/errors"
	"github.com/ajxudir/workspaces/pkg/utils"
	"github.com/ajxudir/workspaces/pkg/workspace"
)

// privateLabel marks private packages in the text listing.
const privateLabel = "PRIVATE"

// WriteList renders pkgs to t.
//
// Structured formats encode the whole collection and ignore Long and All;
// private and independent flags are always part of the encoded record.
// The table format writes one aligned line per package:
//
//	name [v<version> <path>] [(PRIVATE)]
//
// An empty collection writes nothing in table mode.
//
// Parameters:
//   - t: Output sink
//   - pkgs: Packages in listing order
//   - opts: Format and table column switches
//
// Returns:
//   - error: *errors.WriteError when the sink fails; rendering stops at the first failure
func WriteList(t *Term, pkgs []workspace.Package, opts ListOptions) error {
	if opts.Format.IsStructured() {
		if err := writeStructured(t, pkgs, opts.Format); err != nil {
			return &errors.WriteError{Err: err}
		}
		return nil
	}

	if len(pkgs) == 0 {
		return nil
	}

	cols := measure(pkgs)
	for _, pkg := range pkgs {
		if err := writeRow(t, cols, pkg, opts); err != nil {
			return &errors.WriteError{Err: err}
		}
	}
	return nil
}

// writeRow writes a single listing line.
//
// Padding is only emitted ahead of a following column, so lines carry no
// trailing whitespace.
func writeRow(t *Term, cols columns, pkg workspace.Package, opts ListOptions) error {
	if err := t.WriteStr(pkg.Name); err != nil {
		return err
	}
	pad := cols.name - utils.DisplayWidth(pkg.Name)

	if opts.Long {
		label := versionLabel(pkg)
		path := pkg.DisplayPath()

		if err := t.WriteStr(utils.Spaces(pad) + " "); err != nil {
			return err
		}
		if err := t.WriteStyled(t.Accent, label); err != nil {
			return err
		}
		if err := t.WriteStr(utils.Spaces(cols.version-utils.DisplayWidth(label)) + " "); err != nil {
			return err
		}
		if err := t.WriteStyled(t.Muted, path); err != nil {
			return err
		}
		pad = cols.path - utils.DisplayWidth(path)
	}

	if opts.All && pkg.Private {
		if err := t.WriteStr(utils.Spaces(pad) + " ("); err != nil {
			return err
		}
		if err := t.WriteStyled(t.Danger, privateLabel); err != nil {
			return err
		}
		if err := t.WriteStr(")"); err != nil {
			return err
		}
	}

	return t.WriteLine("")
}

// writeStructured encodes pkgs in a machine-readable format.
func writeStructured(t *Term, pkgs []workspace.Package, format Format) error {
	if pkgs == nil {
		pkgs = []workspace.Package{}
	}
	formatter := NewFormatter(format, t.Writer())

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(pkgs)
	case FormatXML:
		return formatter.WriteXML(ListResult{Packages: pkgs})
	case FormatCSV:
		return writeListCSV(formatter, pkgs)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeListCSV writes one CSV row per package.
func writeListCSV(f *Formatter, pkgs []workspace.Package) error {
	rows := make([][]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		rows = append(rows, []string{
			pkg.Name,
			pkg.Version.String(),
			pkg.Location,
			strconv.FormatBool(pkg.Private),
			strconv.FormatBool(pkg.Independent),
		})
	}
	return f.WriteCSV(listHeaders, rows)
}
