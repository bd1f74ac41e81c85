package sqlclient

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/qlens/qlens/internal/config"
	"github.com/qlens/qlens/internal/resultset"
)

// Client is a simple synchronous client over one MySQL connection. A run
// of the tool opens it, issues queries, and closes it; there is no pool
// behind it.
type Client struct {
	db   *sql.DB
	addr string
}

// Dial opens a connection for the profile and proves it with a ping.
// The timeout bounds the TCP dial and the ping (0 = no timeout).
func Dial(prof config.Profile, timeout time.Duration) (*Client, error) {
	return DialContext(context.Background(), prof, timeout)
}

func DialContext(ctx context.Context, prof config.Profile, timeout time.Duration) (*Client, error) {
	db, err := sql.Open("mysql", dsn(prof, timeout))
	if err != nil {
		return nil, fmt.Errorf("sqlclient: open: %w", err)
	}

	// a single invocation needs exactly one connection
	db.SetMaxOpenConns(1)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlclient: connect %s: %w", prof.Addr(), err)
	}

	slog.Debug("connected", "addr", prof.Addr(), "database", prof.Database)
	return &Client{db: db, addr: prof.Addr()}, nil
}

// dsn builds the driver DSN for the profile. NewConfig supplies the driver
// defaults the bare struct would miss.
func dsn(prof config.Profile, timeout time.Duration) string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = prof.Addr()
	cfg.User = prof.User
	cfg.Passwd = prof.Password
	cfg.DBName = prof.Database
	cfg.Timeout = timeout
	return cfg.FormatDSN()
}

func (c *Client) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Addr returns the endpoint the client dialed.
func (c *Client) Addr() string { return c.addr }

// QueryContext runs one statement and returns its rows with classified
// column descriptors. The caller owns the returned Rows and must Close it.
func (c *Client) QueryContext(ctx context.Context, query string) (*Rows, error) {
	if c == nil || c.db == nil {
		return nil, fmt.Errorf("sqlclient: nil client")
	}

	start := time.Now()
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlclient: query: %w", err)
	}
	slog.Debug("query accepted", "elapsed", time.Since(start))

	types, err := rows.ColumnTypes()
	if err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("sqlclient: column types: %w", err)
	}

	descs := make([]resultset.ColumnDesc, len(types))
	for i, ct := range types {
		descs[i] = resultset.ColumnDesc{Name: ct.Name(), Wire: wireType(ct.DatabaseTypeName())}
	}
	return &Rows{rows: rows, descs: descs}, nil
}

// Rows adapts sql.Rows to resultset.RowSource, scanning every column as a
// nullable string.
type Rows struct {
	rows  *sql.Rows
	descs []resultset.ColumnDesc
}

// Columns returns the column descriptors in server order.
func (r *Rows) Columns() []resultset.ColumnDesc { return r.descs }

func (r *Rows) Next() bool { return r.rows.Next() }

func (r *Rows) Scan() ([]sql.NullString, error) {
	row := make([]sql.NullString, len(r.descs))
	dests := make([]any, len(row))
	for i := range row {
		dests[i] = &row[i]
	}
	if err := r.rows.Scan(dests...); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Rows) Err() error { return r.rows.Err() }

func (r *Rows) Close() error { return r.rows.Close() }

// wireType parses the driver's DatabaseTypeName into a wire tag. The
// driver folds signedness into a prefix, which classification ignores, and
// reports blob columns carrying text collations under TEXT names, which
// map back to their blob tags. Unrecognized names tag as WireUnknown
// rather than failing; a new server type must never break a query run.
func wireType(dbTypeName string) resultset.WireType {
	switch strings.TrimPrefix(dbTypeName, "UNSIGNED ") {
	case "DECIMAL":
		return resultset.WireNewDecimal
	case "TINYINT":
		return resultset.WireTiny
	case "SMALLINT":
		return resultset.WireShort
	case "INT":
		return resultset.WireLong
	case "MEDIUMINT":
		return resultset.WireInt24
	case "BIGINT":
		return resultset.WireLongLong
	case "FLOAT":
		return resultset.WireFloat
	case "DOUBLE":
		return resultset.WireDouble
	case "NULL":
		return resultset.WireNull
	case "TIMESTAMP":
		return resultset.WireTimestamp
	case "DATE":
		return resultset.WireDate
	case "TIME":
		return resultset.WireTime
	case "DATETIME":
		return resultset.WireDateTime
	case "YEAR":
		return resultset.WireYear
	case "BIT":
		return resultset.WireBit
	case "JSON":
		return resultset.WireJSON
	case "ENUM":
		return resultset.WireEnum
	case "SET":
		return resultset.WireSet
	case "TINYBLOB", "TINYTEXT":
		return resultset.WireTinyBlob
	case "MEDIUMBLOB", "MEDIUMTEXT":
		return resultset.WireMediumBlob
	case "LONGBLOB", "LONGTEXT":
		return resultset.WireLongBlob
	case "BLOB", "TEXT":
		return resultset.WireBlob
	case "VARCHAR":
		return resultset.WireVarChar
	case "VARBINARY":
		return resultset.WireVarString
	case "CHAR", "BINARY":
		return resultset.WireString
	case "GEOMETRY":
		return resultset.WireGeometry
	default:
		return resultset.WireUnknown
	}
}
