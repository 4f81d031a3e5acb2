package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alisherkhudoyberdiev/qrplatform/entity"
)

func strptr(s string) *string { return &s }
func i64ptr(v int64) *int64   { return &v }
func boolptr(v bool) *bool    { return &v }

func TestCreateCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	rest := seedRestaurant(t, db, "Oshxona Cafe")

	cat, err := svc.CreateCategory(rest.ID, " Ichimliklar ")
	require.NoError(t, err)
	assert.Equal(t, "Ichimliklar", cat.Name)

	_, err = svc.CreateCategory(rest.ID, "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRenameCategoryForeignTenant(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	rest := seedRestaurant(t, db, "Oshxona Cafe")
	other := seedRestaurant(t, db, "Boshqa Restoran")
	cat := seedCategory(t, db, rest.ID, "Ichimliklar")

	_, err := svc.RenameCategory(cat.ID, other.ID, "Salatlar")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCategoryCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	rest := seedRestaurant(t, db, "Oshxona Cafe")
	cat := seedCategory(t, db, rest.ID, "Ichimliklar")
	seedMenuItem(t, db, cat.ID, "Choy", 5000)
	seedMenuItem(t, db, cat.ID, "Kofe", 15000)

	require.NoError(t, svc.DeleteCategory(cat.ID, rest.ID))

	var items int64
	db.Model(&entity.MenuItem{}).Where("category_id = ?", cat.ID).Count(&items)
	assert.Zero(t, items, "cascade removes the category's items")
}

func TestCreateItemValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	rest := seedRestaurant(t, db, "Oshxona Cafe")
	cat := seedCategory(t, db, rest.ID, "Ichimliklar")

	_, err := svc.CreateItem(rest.ID, MenuItemInput{Name: strptr("Choy")})
	assert.ErrorIs(t, err, ErrValidation, "price and category required")

	_, err = svc.CreateItem(rest.ID, MenuItemInput{
		Name: strptr("Choy"), Price: i64ptr(-1), CategoryID: &cat.ID,
	})
	assert.ErrorIs(t, err, ErrValidation, "negative price rejected")

	item, err := svc.CreateItem(rest.ID, MenuItemInput{
		Name: strptr("Choy"), Price: i64ptr(5000), CategoryID: &cat.ID,
		Description: strptr("Qora choy"),
	})
	require.NoError(t, err)
	assert.True(t, item.IsAvailable, "available by default")
}

func TestCreateItemForeignCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	rest := seedRestaurant(t, db, "Oshxona Cafe")
	other := seedRestaurant(t, db, "Boshqa Restoran")
	foreignCat := seedCategory(t, db, other.ID, "Taomlar")

	_, err := svc.CreateItem(rest.ID, MenuItemInput{
		Name: strptr("Osh"), Price: i64ptr(40000), CategoryID: &foreignCat.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItemPartial(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	rest := seedRestaurant(t, db, "Oshxona Cafe")
	cat := seedCategory(t, db, rest.ID, "Ichimliklar")
	item := seedMenuItem(t, db, cat.ID, "Choy", 5000)

	updated, err := svc.UpdateItem(item.ID, rest.ID, MenuItemInput{
		Price:       i64ptr(7000),
		IsAvailable: boolptr(false),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7000, updated.Price)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "Choy", updated.Name, "untouched fields stay put")
}

func TestUpdateItemMoveToForeignCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	rest := seedRestaurant(t, db, "Oshxona Cafe")
	other := seedRestaurant(t, db, "Boshqa Restoran")
	cat := seedCategory(t, db, rest.ID, "Ichimliklar")
	foreignCat := seedCategory(t, db, other.ID, "Taomlar")
	item := seedMenuItem(t, db, cat.ID, "Choy", 5000)

	_, err := svc.UpdateItem(item.ID, rest.ID, MenuItemInput{CategoryID: &foreignCat.ID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItemCrossTenantIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	rest := seedRestaurant(t, db, "Oshxona Cafe")
	other := seedRestaurant(t, db, "Boshqa Restoran")
	cat := seedCategory(t, db, rest.ID, "Ichimliklar")
	item := seedMenuItem(t, db, cat.ID, "Choy", 5000)

	_, err := svc.UpdateItem(item.ID, other.ID, MenuItemInput{Price: i64ptr(1)})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteItem(item.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublicMenuFiltersUnavailable(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	rest := seedRestaurant(t, db, "Oshxona Cafe")
	cat := seedCategory(t, db, rest.ID, "Ichimliklar")
	seedMenuItem(t, db, cat.ID, "Choy", 5000)
	hidden := seedMenuItem(t, db, cat.ID, "Kofe", 15000)
	require.NoError(t, db.Model(hidden).Update("is_available", false).Error)

	menu, err := svc.Menu(rest.ID)
	require.NoError(t, err)
	require.Len(t, menu.Categories, 1)
	require.Len(t, menu.Categories[0].MenuItems, 1)
	assert.Equal(t, "Choy", menu.Categories[0].MenuItems[0].Name)

	// The hidden item is also gone from the public single-item lookup.
	_, err = svc.Item(rest.ID, hidden.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublicMenuUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	_, err := svc.Menu("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
