package sqlclient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qlens/qlens/internal/config"
	"github.com/qlens/qlens/internal/resultset"
)

func TestWireType(t *testing.T) {
	cases := []struct {
		dbTypeName string
		want       resultset.WireType
	}{
		{"DECIMAL", resultset.WireNewDecimal},
		{"TINYINT", resultset.WireTiny},
		{"SMALLINT", resultset.WireShort},
		{"INT", resultset.WireLong},
		{"MEDIUMINT", resultset.WireInt24},
		{"BIGINT", resultset.WireLongLong},
		{"UNSIGNED INT", resultset.WireLong},
		{"UNSIGNED BIGINT", resultset.WireLongLong},
		{"FLOAT", resultset.WireFloat},
		{"DOUBLE", resultset.WireDouble},
		{"TIMESTAMP", resultset.WireTimestamp},
		{"DATE", resultset.WireDate},
		{"TIME", resultset.WireTime},
		{"DATETIME", resultset.WireDateTime},
		{"YEAR", resultset.WireYear},
		{"BIT", resultset.WireBit},
		{"JSON", resultset.WireJSON},
		{"ENUM", resultset.WireEnum},
		{"SET", resultset.WireSet},
		{"VARCHAR", resultset.WireVarChar},
		{"VARBINARY", resultset.WireVarString},
		{"CHAR", resultset.WireString},
		{"BINARY", resultset.WireString},
		{"GEOMETRY", resultset.WireGeometry},

		// blob columns with text collations come back under TEXT names
		{"TINYTEXT", resultset.WireTinyBlob},
		{"TINYBLOB", resultset.WireTinyBlob},
		{"MEDIUMTEXT", resultset.WireMediumBlob},
		{"MEDIUMBLOB", resultset.WireMediumBlob},
		{"LONGTEXT", resultset.WireLongBlob},
		{"LONGBLOB", resultset.WireLongBlob},
		{"TEXT", resultset.WireBlob},
		{"BLOB", resultset.WireBlob},

		// anything new stays usable instead of failing
		{"VECTOR", resultset.WireUnknown},
		{"", resultset.WireUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, wireType(tc.dbTypeName), "wireType(%q)", tc.dbTypeName)
	}
}

func TestDSN(t *testing.T) {
	prof := config.Profile{
		Name:     "local",
		Host:     "db.example.com",
		Port:     3307,
		User:     "svc",
		Password: "hunter2",
		Database: "orders",
	}

	got := dsn(prof, 5*time.Second)
	assert.Contains(t, got, "svc:hunter2@")
	assert.Contains(t, got, "tcp(db.example.com:3307)")
	assert.Contains(t, got, "/orders")
	assert.Contains(t, got, "timeout=5s")
}

func TestDSN_DefaultPort(t *testing.T) {
	prof := config.Profile{Host: "127.0.0.1", User: "root", Database: "appdb"}
	assert.Contains(t, dsn(prof, 0), "tcp(127.0.0.1:3306)")
}

func TestClient_NilSafe(t *testing.T) {
	var c *Client
	assert.NoError(t, c.Close())

	_, err := c.QueryContext(context.Background(), "SELECT 1")
	assert.Error(t, err)
}
