package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/tokenorder/internal/menu"
)

func TestSummarize(t *testing.T) {
	o := assemble(obs(menu.Starter, menu.Triangle), obs(menu.MainCourse, menu.Pentagon))

	summary, total := Summarize(o)

	assert.Equal(t, "Garlic Bread (22 TL), Casseroles (28 TL)", summary)
	assert.Equal(t, 50, total)
}

func TestSummarize_Idempotent(t *testing.T) {
	o := assemble(
		obs(menu.Dessert, menu.Pentagon),
		obs(menu.Starter, menu.Rectangle),
		obs(menu.Snack, menu.Pentagon),
	)

	s1, t1 := Summarize(o)
	s2, t2 := Summarize(o)

	assert.Equal(t, s1, s2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, "Tiramisu (19 TL), Soup (15 TL), Fish&Chips (18 TL)", s1)
	assert.Equal(t, 52, t1)
}

func TestSummarize_UnknownDishCountsZero(t *testing.T) {
	catalog, err := menu.NewCatalog(map[menu.Key]menu.Entry{
		{Category: menu.Starter, Shape: menu.Triangle}: {Name: "Garlic Bread", Price: 22},
	})
	require.NoError(t, err)
	o, _ := NewAssembler(catalog).Assemble([]Observation{
		obs(menu.Starter, menu.Triangle),
		obs(menu.MainCourse, menu.Rectangle),
	})

	summary, total := Summarize(o)

	assert.Equal(t, "Garlic Bread (22 TL), Unknown Dish (0 TL)", summary)
	assert.Equal(t, 22, total)
}

func TestSummarize_Empty(t *testing.T) {
	summary, total := Summarize(assemble())
	assert.Empty(t, summary)
	assert.Zero(t, total)
}
