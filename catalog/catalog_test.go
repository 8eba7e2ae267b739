package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	radix "github.com/kanon-go/radix"
)

func mustSexagesimal(t *testing.T, n int64) *radix.BasedReal {
	t.Helper()
	v, err := radix.FromInt(radix.Sexagesimal, n, 0)
	require.NoError(t, err)
	return v
}

func TestTableLookupExact(t *testing.T) {
	table := NewTable(radix.Sexagesimal, 0,
		Row{Key: mustSexagesimal(t, 3), Value: "three"},
		Row{Key: mustSexagesimal(t, 1), Value: "one"},
		Row{Key: mustSexagesimal(t, 2), Value: "two"},
	)
	require.Equal(t, 3, table.Len())

	// rows are kept sorted ascending by key
	require.Equal(t, "one", table.At(0).Value)
	require.Equal(t, "two", table.At(1).Value)
	require.Equal(t, "three", table.At(2).Value)

	row, ok := table.Lookup(2)
	require.True(t, ok)
	require.Equal(t, "two", row.Value)
}

func TestTableLookupNearest(t *testing.T) {
	table := NewTable(radix.Sexagesimal, 0,
		Row{Key: mustSexagesimal(t, 1), Value: "one"},
		Row{Key: mustSexagesimal(t, 10), Value: "ten"},
	)
	row, ok := table.Lookup(9)
	require.False(t, ok)
	require.Equal(t, "ten", row.Value)
}

func TestTableLookupEmpty(t *testing.T) {
	table := NewTable(radix.Sexagesimal, 0)
	_, ok := table.Lookup(5)
	require.False(t, ok)
}
