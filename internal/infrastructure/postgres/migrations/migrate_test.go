package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContieneEsquemaConUpYDown(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	b, err := fs.ReadFile(FS, files[0])
	require.NoError(t, err)
	sql := string(b)
	assert.True(t, strings.HasPrefix(sql, "-- +goose Up"))
	assert.Contains(t, sql, "-- +goose Down")
	for _, table := range []string{"materials", "bom_items", "store_products", "store_product_costs", "discounts", "ad_records"} {
		assert.Contains(t, sql, "CREATE TABLE "+table+" (")
	}
	assert.Contains(t, sql, "UNIQUE (store_id, product_id)")
}
