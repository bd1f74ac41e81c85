package resultset

import (
	"database/sql"
	"fmt"
	"unsafe"
)

// NullText is the cell text stored in place of a SQL NULL.
const NullText = "NULL"

// ColumnDesc describes one result column as delivered by the transport,
// before classification.
type ColumnDesc struct {
	Name string
	Wire WireType
}

// Column is a classified result column header.
type Column struct {
	Name    string
	Wire    WireType
	SQLType string
	GoType  string
}

// RowSource yields the rows of a query result in server order. It mirrors
// the iteration surface of database/sql.Rows so a transport can hand its
// rows straight to Materialize.
type RowSource interface {
	// Next advances to the next row, returning false when exhausted.
	Next() bool
	// Scan returns the current row; NULL cells are marked invalid.
	Scan() ([]sql.NullString, error)
	// Err reports any error that ended iteration early.
	Err() error
}

// Buffer is a fully materialized query result: classified headers plus a
// row-major grid of text cells. Once built it is never mutated; the
// renderer only reads it.
type Buffer struct {
	headers []Column
	cells   []string // row-major, len == rows*len(headers)
	rows    int
}

// Materialize drains src into a Buffer, classifying each descriptor and
// storing every cell as text in arrival order. NULL cells are stored as
// NullText. Any shape is valid, including zero rows and zero columns; the
// only failure mode is a row-source error, which leaves no partial buffer
// behind.
func Materialize(descs []ColumnDesc, src RowSource) (*Buffer, error) {
	headers := make([]Column, len(descs))
	for i, d := range descs {
		sqlName, goName := Classify(d.Wire)
		headers[i] = Column{Name: d.Name, Wire: d.Wire, SQLType: sqlName, GoType: goName}
	}

	buf := &Buffer{headers: headers}
	for src.Next() {
		row, err := src.Scan()
		if err != nil {
			return nil, fmt.Errorf("resultset: scan row %d: %w", buf.rows, err)
		}
		if len(row) != len(headers) {
			return nil, fmt.Errorf("resultset: row %d has %d cells, want %d", buf.rows, len(row), len(headers))
		}
		for _, cell := range row {
			if cell.Valid {
				buf.cells = append(buf.cells, cell.String)
			} else {
				buf.cells = append(buf.cells, NullText)
			}
		}
		buf.rows++
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("resultset: fetch rows: %w", err)
	}
	return buf, nil
}

// NumCols returns the column count.
func (b *Buffer) NumCols() int { return len(b.headers) }

// NumRows returns the row count.
func (b *Buffer) NumRows() int { return b.rows }

// Header returns the classified header of column c.
func (b *Buffer) Header(c int) Column { return b.headers[c] }

// Cell returns the text of the cell at row r, column c.
func (b *Buffer) Cell(r, c int) string { return b.cells[r*len(b.headers)+c] }

// ApproxBytes estimates the memory the buffer retains: the struct itself,
// one string header per cell, one Column per header, and the byte length
// plus one terminator byte of every stored string. It is an accounting
// figure for the summary block, not a heap measurement.
func (b *Buffer) ApproxBytes() int {
	size := int(unsafe.Sizeof(*b))
	size += len(b.cells) * int(unsafe.Sizeof(""))
	size += len(b.headers) * int(unsafe.Sizeof(Column{}))
	for _, cell := range b.cells {
		size += len(cell) + 1
	}
	for _, h := range b.headers {
		size += len(h.Name) + 1
		size += len(h.SQLType) + 1
		size += len(h.GoType) + 1
	}
	return size
}
