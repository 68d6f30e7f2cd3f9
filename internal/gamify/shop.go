package gamify

// ShopItem is a purchasable reward paid for with XP.
type ShopItem struct {
	ID    string
	Name  string
	Icon  string
	Price int
}

// ShopCatalog is the fixed list of purchasable items.
func ShopCatalog() []ShopItem {
	return []ShopItem{
		{ID: "theme_midnight", Name: "Midnight theme", Icon: "🌙", Price: 200},
		{ID: "theme_sunrise", Name: "Sunrise theme", Icon: "🌅", Price: 200},
		{ID: "theme_forest", Name: "Forest theme", Icon: "🌲", Price: 350},
		{ID: "icon_rocket", Name: "Rocket app icon", Icon: "🚀", Price: 150},
		{ID: "icon_crown", Name: "Crown app icon", Icon: "👑", Price: 500},
		{ID: "badge_gilded", Name: "Gilded profile badge", Icon: "🥇", Price: 750},
		{ID: "confetti_boost", Name: "Extra confetti", Icon: "🎉", Price: 100},
	}
}

// FindShopItem looks up a catalog item by id.
func FindShopItem(id string) (ShopItem, bool) {
	for _, it := range ShopCatalog() {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}
