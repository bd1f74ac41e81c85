// Package resultset materializes a streamed query result into an immutable
// in-memory buffer of text cells, classifying each column's wire type along
// the way.
package resultset

// WireType tags the MySQL column type of a result column as reported by the
// driver. The tags cover every type the protocol can announce; anything the
// tool does not recognize is WireUnknown.
type WireType uint8

const (
	WireDecimal WireType = iota
	WireTiny
	WireShort
	WireLong
	WireFloat
	WireDouble
	WireNull
	WireTimestamp
	WireLongLong
	WireInt24
	WireDate
	WireTime
	WireDateTime
	WireYear
	WireNewDate
	WireVarChar
	WireBit
	WireJSON
	WireNewDecimal
	WireEnum
	WireSet
	WireTinyBlob
	WireMediumBlob
	WireLongBlob
	WireBlob
	WireVarString
	WireString
	WireGeometry

	// WireUnknown is the catch-all for column types outside the table above.
	WireUnknown
)

// Classify maps a wire type to the SQL type name shown in the column legend
// and the Go type a scan of that column lands in. The mapping is total:
// every WireType value, including ones outside the declared constants,
// yields a pair. Unrecognized tags classify as ("UNKNOWN", "void") so that
// a new server type can never fail a query run.
func Classify(t WireType) (sqlName, goName string) {
	switch t {
	case WireDecimal, WireNewDecimal:
		return "DECIMAL", "float64"
	case WireTiny:
		return "TINYINT", "int8"
	case WireShort:
		return "SMALLINT", "int16"
	case WireLong:
		return "INT", "int32"
	case WireFloat:
		return "FLOAT", "float32"
	case WireDouble:
		return "DOUBLE", "float64"
	case WireNull:
		return "NULL", "void"
	case WireTimestamp:
		return "TIMESTAMP", "string"
	case WireLongLong:
		return "BIGINT", "int64"
	case WireInt24:
		return "MEDIUMINT", "int32"
	case WireDate:
		return "DATE", "string"
	case WireTime:
		return "TIME", "string"
	case WireDateTime:
		return "DATETIME", "string"
	case WireYear:
		return "YEAR", "int16"
	case WireNewDate:
		return "NEWDATE", "string"
	case WireVarChar:
		return "VARCHAR", "string"
	case WireBit:
		return "BIT", "uint8"
	case WireJSON:
		return "JSON", "string"
	case WireEnum:
		return "ENUM", "string"
	case WireSet:
		return "SET", "string"
	case WireTinyBlob:
		return "TINYBLOB", "[]byte"
	case WireMediumBlob:
		return "MEDIUMBLOB", "[]byte"
	case WireLongBlob:
		return "LONGBLOB", "[]byte"
	case WireBlob:
		return "BLOB", "[]byte"
	case WireVarString, WireString:
		return "STRING", "string"
	case WireGeometry:
		return "GEOMETRY", "[]byte"
	default:
		return "UNKNOWN", "void"
	}
}

// String returns the SQL type name for t.
func (t WireType) String() string {
	name, _ := Classify(t)
	return name
}
