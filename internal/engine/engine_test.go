package engine

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inverrors "github.com/retailkit/inventory/internal/errors"
	"github.com/retailkit/inventory/internal/inventory"
	"github.com/retailkit/inventory/internal/store"
)

func newTestEngine() *Engine {
	return New(store.NewJSONStore())
}

func addElectronics(t *testing.T, eng *Engine, id string) inventory.Product {
	t.Helper()
	p, err := inventory.NewElectronics(id, "Phone", 500, 5, 12, "Acme")
	require.NoError(t, err)
	added, err := eng.AddProduct(p)
	require.NoError(t, err)
	return added
}

func Test_Engine_AddProduct_AssignsID(t *testing.T) {
	// given
	eng := newTestEngine()
	p, err := inventory.NewElectronics("", "Phone", 500, 5, 12, "")
	require.NoError(t, err)

	// when
	added, err := eng.AddProduct(p)

	// then: the engine assigned a UUID
	require.NoError(t, err)
	_, err = uuid.Parse(added.ID)
	assert.NoError(t, err)

	found, err := eng.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, found)
}

func Test_Engine_AddProduct_DuplicateID(t *testing.T) {
	// given
	eng := newTestEngine()
	addElectronics(t, eng, "E1")

	// when
	p, err := inventory.NewElectronics("E1", "Other", 100, 1, 6, "")
	require.NoError(t, err)
	_, err = eng.AddProduct(p)

	// then
	assert.ErrorIs(t, err, inverrors.ErrDuplicateID)
	assert.Len(t, eng.ListAll(), 1)
}

func Test_Engine_SellAndRestock(t *testing.T) {
	// given: Electronics E1 with price 500 and quantity 5
	eng := newTestEngine()
	addElectronics(t, eng, "E1")
	require.Len(t, eng.ListAll(), 1)
	assert.InDelta(t, 2500.0, eng.TotalValue(), 1e-9)

	// when: sell 2
	updated, err := eng.Sell("E1", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	// then: overselling fails and leaves the quantity at 3
	_, err = eng.Sell("E1", 10)
	require.ErrorIs(t, err, inverrors.ErrInsufficientStock)
	found, err := eng.Get("E1")
	require.NoError(t, err)
	assert.Equal(t, 3, found.Quantity)

	// restocking has no upper bound
	updated, err = eng.Restock("E1", 1000)
	require.NoError(t, err)
	assert.Equal(t, 1003, updated.Quantity)
}

func Test_Engine_RemoveExpired(t *testing.T) {
	// given
	eng := newTestEngine()
	today := inventory.NewDate(2026, 8, 28)
	expired, err := inventory.NewGrocery("G1", "Old Milk", 2.5, 10, today.AddDays(-1))
	require.NoError(t, err)
	_, err = eng.AddProduct(expired)
	require.NoError(t, err)

	// when
	removed := eng.RemoveExpired(today)

	// then
	require.Len(t, removed, 1)
	assert.Equal(t, "G1", removed[0].ID)

	// a second sweep with the same date removes nothing
	assert.Empty(t, eng.RemoveExpired(today))
}

func Test_Engine_SaveAndLoad(t *testing.T) {
	// given
	eng := newTestEngine()
	path := filepath.Join(t.TempDir(), "catalog.json")
	addElectronics(t, eng, "E1")
	grocery, err := inventory.NewGrocery("G1", "Milk", 2.5, 20, inventory.NewDate(2026, 12, 31))
	require.NoError(t, err)
	_, err = eng.AddProduct(grocery)
	require.NoError(t, err)
	clothing, err := inventory.NewClothing("C1", "Shirt", 25, 10, "M", "cotton")
	require.NoError(t, err)
	_, err = eng.AddProduct(clothing)
	require.NoError(t, err)

	// when: save, then load into a fresh engine
	require.NoError(t, eng.SaveToFile(path))
	fresh := newTestEngine()
	require.NoError(t, fresh.LoadFromFile(path))

	// then
	assert.Equal(t, eng.ListAll(), fresh.ListAll())
}

func Test_Engine_LoadFromFile_KeepsCatalogOnFailure(t *testing.T) {
	// given
	eng := newTestEngine()
	addElectronics(t, eng, "E1")

	// when: loading from a path that does not exist
	err := eng.LoadFromFile(filepath.Join(t.TempDir(), "absent.json"))

	// then: the previous catalog is untouched
	require.Error(t, err)
	found, getErr := eng.Get("E1")
	require.NoError(t, getErr)
	assert.Equal(t, "Phone", found.Name)
}

func Test_Engine_Search(t *testing.T) {
	// given
	eng := newTestEngine()
	addElectronics(t, eng, "E1")
	grocery, err := inventory.NewGrocery("G1", "Milk", 2.5, 20, inventory.NewDate(2026, 12, 31))
	require.NoError(t, err)
	_, err = eng.AddProduct(grocery)
	require.NoError(t, err)

	// when / then
	byName := eng.SearchByName("phone")
	require.Len(t, byName, 1)
	assert.Equal(t, "E1", byName[0].ID)

	byCategory := eng.SearchByCategory(inventory.CategoryGrocery)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "G1", byCategory[0].ID)
}

func Test_Engine_ListActive(t *testing.T) {
	// given
	eng := newTestEngine()
	today := inventory.NewDate(2026, 8, 28)
	expired, err := inventory.NewGrocery("G1", "Old Milk", 2.5, 10, today.AddDays(-1))
	require.NoError(t, err)
	_, err = eng.AddProduct(expired)
	require.NoError(t, err)
	addElectronics(t, eng, "E1")

	// when
	active := eng.ListActive(today)

	// then: the expired product is hidden but still present
	require.Len(t, active, 1)
	assert.Equal(t, "E1", active[0].ID)
	assert.Len(t, eng.ListAll(), 2)
}
