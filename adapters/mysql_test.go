package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/core"
)

func TestWithConnParams(t *testing.T) {
	r := require.New(t)

	testCases := []struct {
		input    string
		expected string
	}{
		{
			"root:root@tcp(localhost:3306)/db",
			"root:root@tcp(localhost:3306)/db?parseTime=true",
		},
		{
			"root:root@tcp(localhost:3306)/db?tls=skip-verify",
			"root:root@tcp(localhost:3306)/db?tls=skip-verify&parseTime=true",
		},
	}

	for _, tc := range testCases {
		r.Equal(tc.expected, withConnParams(tc.input))
	}
}

func TestProcessDecimal(t *testing.T) {
	r := require.New(t)

	val := processDecimal([]byte("1.20"))
	r.Equal(core.KindDecimal, val.Kind())
	r.Equal("1.20", val.CSVField())

	val = processDecimal(nil)
	r.Equal(core.KindNull, val.Kind())

	// garbage degrades to text instead of failing the row
	val = processDecimal([]byte("not a decimal"))
	r.Equal(core.KindText, val.Kind())
}

func TestProcessBinary(t *testing.T) {
	r := require.New(t)

	val := processBinary([]byte{0xde, 0xad})
	r.Equal(core.KindBytes, val.Kind())
	r.Equal("3q0=", val.CSVField())

	val = processBinary(nil)
	r.Equal(core.KindNull, val.Kind())
}

func TestProcessTemporal(t *testing.T) {
	r := require.New(t)

	val := processTemporal(time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC))
	r.Equal(core.KindTime, val.Kind())
	r.Equal("2023-12-25", val.CSVField())

	val = processTemporal(time.Date(2023, 12, 25, 14, 30, 45, 123456000, time.UTC))
	r.Equal("2023-12-25 14:30:45.123456", val.CSVField())

	// zero dates arrive as raw bytes even with parseTime enabled
	val = processTemporal([]byte("0000-00-00"))
	r.Equal(core.KindTime, val.Kind())
	r.Equal("0000-00-00", val.CSVField())

	val = processTemporal(nil)
	r.Equal(core.KindNull, val.Kind())
}

func TestMux_GetAdapter(t *testing.T) {
	r := require.New(t)

	for _, alias := range []string{"mysql", "mariadb"} {
		adapter, err := new(Mux).GetAdapter(alias)
		r.NoError(err)
		r.NotNil(adapter)
	}

	_, err := new(Mux).GetAdapter("postgres")
	r.ErrorIs(err, ErrUnsupportedTypeAlias)
}
