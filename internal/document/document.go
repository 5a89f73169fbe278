// Package document reads declarative table layouts from YAML, TOML or JSON
// files and solves them into placed rectangles.
//
// A document names a target area, optional cell templates and a list of
// rows:
//
//	width: 320
//	height: 240
//	defaults:
//	  cell: {preferred: {width: 64, height: 64}}
//	  columns:
//	    "2": {preferred: {width: 128, height: 64}, flags: [expand-horizontal]}
//	rows:
//	  - cells: [{id: a}, {id: b}, {id: c}]
//	  - cells: [{id: d, colspan: 3, flags: [fill, expand]}]
//
// Every cell starts from the template that applies at its position and then
// takes whatever fields it sets itself.
package document

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/grindlemire/go-tablelayout/internal/layout"
)

var (
	// ErrUnknownFlag is returned for a flag name that is not a cell flag.
	ErrUnknownFlag = errors.New("unknown cell flag")
	// ErrUnsupportedFormat is returned for a file format with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrInvalidSize is returned for negative or non-finite sizes, negative
	// column spans and row or column keys that are not non-negative integers.
	ErrInvalidSize = errors.New("invalid size")
)

// Document is a layout file.
type Document struct {
	Width    float32  `yaml:"width" toml:"width" json:"width"`
	Height   float32  `yaml:"height" toml:"height" json:"height"`
	Defaults Defaults `yaml:"defaults,omitempty" toml:"defaults,omitempty" json:"defaults,omitempty"`
	Rows     []Row    `yaml:"rows" toml:"rows" json:"rows"`
}

// Defaults holds cell templates. Row and column keys are decimal indices.
type Defaults struct {
	Cell    *Cell           `yaml:"cell,omitempty" toml:"cell,omitempty" json:"cell,omitempty"`
	Rows    map[string]Cell `yaml:"rows,omitempty" toml:"rows,omitempty" json:"rows,omitempty"`
	Columns map[string]Cell `yaml:"columns,omitempty" toml:"columns,omitempty" json:"columns,omitempty"`
}

// Row is one table row.
type Row struct {
	Cells []Cell `yaml:"cells" toml:"cells" json:"cells"`
}

// Cell describes one cell. Unset fields fall back to the applicable
// template. Flags, when present, replace the template's flags.
type Cell struct {
	ID        string   `yaml:"id,omitempty" toml:"id,omitempty" json:"id,omitempty"`
	Minimum   *Size    `yaml:"minimum,omitempty" toml:"minimum,omitempty" json:"minimum,omitempty"`
	Preferred *Size    `yaml:"preferred,omitempty" toml:"preferred,omitempty" json:"preferred,omitempty"`
	Maximum   *Size    `yaml:"maximum,omitempty" toml:"maximum,omitempty" json:"maximum,omitempty"`
	Flags     []string `yaml:"flags,omitempty" toml:"flags,omitempty" json:"flags,omitempty"`
	Colspan   *int     `yaml:"colspan,omitempty" toml:"colspan,omitempty" json:"colspan,omitempty"`
}

// Size is a width and height pair.
type Size struct {
	Width  float32 `yaml:"width" toml:"width" json:"width"`
	Height float32 `yaml:"height" toml:"height" json:"height"`
}

func (s Size) layout(field string) (layout.Size, error) {
	for _, v := range []float32{s.Width, s.Height} {
		f := float64(v)
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return layout.Size{}, fmt.Errorf("%s %gx%g: %w", field, s.Width, s.Height, ErrInvalidSize)
		}
	}
	return layout.Size{Width: s.Width, Height: s.Height}, nil
}

// Apply returns p with every field c sets copied over it.
func (c Cell) Apply(p layout.CellProperties) (layout.CellProperties, error) {
	var err error
	if c.Minimum != nil {
		if p.Size.Minimum, err = c.Minimum.layout("minimum"); err != nil {
			return p, err
		}
	}
	if c.Preferred != nil {
		if p.Size.Preferred, err = c.Preferred.layout("preferred"); err != nil {
			return p, err
		}
	}
	if c.Maximum != nil {
		if p.Size.Maximum, err = c.Maximum.layout("maximum"); err != nil {
			return p, err
		}
	}
	if c.Flags != nil {
		flags, err := parseFlags(c.Flags)
		if err != nil {
			return p, err
		}
		p.Flags = flags
	}
	if c.Colspan != nil {
		if *c.Colspan < 0 {
			return p, fmt.Errorf("colspan %d: %w", *c.Colspan, ErrInvalidSize)
		}
		p = p.Span(*c.Colspan)
	}
	return p, nil
}

func parseFlags(names []string) (layout.CellFlags, error) {
	var flags layout.CellFlags
	for _, name := range names {
		f, ok := layout.ParseCellFlag(name)
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownFlag, name)
		}
		flags |= f
	}
	return flags, nil
}

// Validate checks the target area, every template and every cell without
// building a table.
func (d *Document) Validate() error {
	if _, err := (Size{Width: d.Width, Height: d.Height}).layout("target"); err != nil {
		return err
	}
	if _, err := d.templates(); err != nil {
		return err
	}
	for i, row := range d.Rows {
		for j, c := range row.Cells {
			if _, err := c.Apply(layout.NewCell()); err != nil {
				return fmt.Errorf("row %d cell %d: %w", i, j, err)
			}
		}
	}
	return nil
}

type templates struct {
	cell    layout.CellProperties
	rows    map[int]layout.CellProperties
	columns map[int]layout.CellProperties
}

// templates resolves the document defaults. Row and column templates start
// from the global cell template.
func (d *Document) templates() (templates, error) {
	tpl := templates{cell: layout.NewCell()}
	if d.Defaults.Cell != nil {
		cell, err := d.Defaults.Cell.Apply(tpl.cell)
		if err != nil {
			return tpl, fmt.Errorf("defaults.cell: %w", err)
		}
		tpl.cell = cell
	}

	var err error
	if tpl.rows, err = indexed("rows", d.Defaults.Rows, tpl.cell); err != nil {
		return tpl, err
	}
	if tpl.columns, err = indexed("columns", d.Defaults.Columns, tpl.cell); err != nil {
		return tpl, err
	}
	return tpl, nil
}

func indexed(section string, cells map[string]Cell, base layout.CellProperties) (map[int]layout.CellProperties, error) {
	out := make(map[int]layout.CellProperties, len(cells))
	for key, c := range cells {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("defaults.%s key %q: %w", section, key, ErrInvalidSize)
		}
		p, err := c.Apply(base)
		if err != nil {
			return nil, fmt.Errorf("defaults.%s.%s: %w", section, key, err)
		}
		out[idx] = p
	}
	return out, nil
}

// Build installs the document's templates on t and appends its rows and
// cells. record receives every cell's id and rectangle when t is solved.
// Cells without an id are named r<row>c<column> after their position.
func (d *Document) Build(t *layout.Table, record func(id string, r layout.Rect)) error {
	tpl, err := d.templates()
	if err != nil {
		return err
	}
	t.SetCellDefaults(tpl.cell)
	for _, idx := range slices.Sorted(maps.Keys(tpl.rows)) {
		t.SetRowDefaults(idx, tpl.rows[idx])
	}
	for _, idx := range slices.Sorted(maps.Keys(tpl.columns)) {
		t.SetColumnDefaults(idx, tpl.columns[idx])
	}

	for i, row := range d.Rows {
		if i > 0 {
			t.AddRow()
		}
		for j, c := range row.Cells {
			p, err := c.Apply(t.WithDefaults())
			if err != nil {
				return fmt.Errorf("row %d cell %d: %w", i, j, err)
			}
			id := c.ID
			if id == "" {
				r, col := t.Cursor()
				id = "r" + strconv.Itoa(r) + "c" + strconv.Itoa(col)
			}
			if record != nil {
				p = p.Callback(func(x, y, w, h float32) {
					record(id, layout.NewRect(x, y, w, h))
				})
			}
			t.AddCell(p)
		}
	}
	return nil
}
