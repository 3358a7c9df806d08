package catalog

var categories = []Category{
	{Name: "Flowers", Slug: CategoryFlowers, Image: "/categories/flowers_cat.webp"},
	{Name: "Bouquets", Slug: CategoryBouquets, Image: "/categories/bouquets_cat.webp"},
	{Name: "Keychains", Slug: CategoryKeychains, Image: "/categories/keychain_cat.webp"},
	{Name: "Bows", Slug: CategoryBows, Image: "/categories/bows_cat.webp"},
	{Name: "Coasters", Slug: CategoryCoasters, Image: "/categories/coaster_cat.webp"},
	{Name: "Toys", Slug: CategoryToys, Image: "/categories/toys_cat.webp"},
	{Name: "Bracelets", Slug: CategoryBracelets, Image: "/categories/bracelet_cat.webp"},
}

// registry holds every purchasable item. Registration order is display order
// and also fixes the flower order used in custom bouquet descriptions.
var registry = []Item{
	{
		ID:          "flower-daisy",
		Name:        "Daisy Crochet Flower",
		Category:    CategoryFlowers,
		Price:       800,
		Images:      []string{"/products/flowers/daisy_1.png", "/products/flowers/daisy_2.png"},
		Description: "Handcrafted crochet daisy flower that never wilts. Perfect for home decor or as a thoughtful gift.",
		InStock:     true,
		Colors:      []string{"Pink", "Purple", "Blue", "Off-white"},
	},
	{
		ID:          "flower-lavender",
		Name:        "Lavender Crochet Flower",
		Category:    CategoryFlowers,
		Price:       900,
		Images:      []string{"/products/flowers/lavender.png"},
		Description: "Delicate lavender flower handmade with love. Adds a touch of elegance to any space.",
		InStock:     true,
		Colors:      []string{"Light Pink", "Dark Pink", "Light Purple", "Dark Purple", "Maroon", "Off-white"},
	},
	{
		ID:          "flower-lily",
		Name:        "Lily Crochet Flower",
		Category:    CategoryFlowers,
		Price:       1000,
		Images:      []string{"/products/flowers/lily.png"},
		Description: "Elegant lily flower that stays fresh forever. A timeless piece of handmade art.",
		InStock:     true,
		Colors:      []string{"Light Pink", "Dark Pink", "Light Purple", "Dark Purple", "Light Blue", "Dark Blue", "Off-white", "Maroon", "Yellow"},
	},
	{
		ID:          "flower-rose",
		Name:        "Rose Crochet Flower",
		Category:    CategoryFlowers,
		Price:       1200,
		Images:      []string{"/products/flowers/rose.png"},
		Description: "Classic rose design crafted with care. The perfect gift that lasts forever.",
		InStock:     true,
		Colors:      []string{"Light Pink", "Dark Pink", "Light Purple", "Dark Purple", "Light Blue", "Dark Blue", "Off-white", "Maroon"},
	},
	{
		ID:          "flower-tulip",
		Name:        "Tulip Crochet Flower",
		Category:    CategoryFlowers,
		Price:       950,
		Images:      []string{"/products/flowers/tulip.png"},
		Description: "Charming tulip flower handcrafted with premium materials. Brings spring vibes year-round.",
		InStock:     true,
		Colors:      []string{"Light Pink", "Dark Pink", "Light Purple", "Dark Purple", "Light Blue", "Dark Blue", "Off-white", "Maroon", "Yellow"},
	},
	{
		ID:          "flower-sunflower",
		Name:        "Sunflower Crochet Flower",
		Category:    CategoryFlowers,
		Price:       1100,
		Images:      []string{"/products/flowers/sunflower.png"},
		Description: "Bright and cheerful sunflower that brings warmth and happiness. Perfect for adding a sunny touch to any space.",
		InStock:     true,
		Colors:      []string{"Yellow"},
	},

	{
		ID:          "leaf-classic",
		Name:        "Green Leaf",
		Category:    CategoryLeaves,
		Price:       100,
		Images:      []string{"/products/leaves/green_leaf.png"},
		Description: "Classic green filler leaf to round out a bouquet.",
		InStock:     true,
	},
	{
		ID:          "leaf-fern",
		Name:        "Fern Leaf",
		Category:    CategoryLeaves,
		Price:       120,
		Images:      []string{"/products/leaves/fern_leaf.png"},
		Description: "Feathery fern filler that adds texture between stems.",
		InStock:     true,
	},

	{
		ID:          "bouquet-midnight-bloom",
		Name:        "Midnight Bloom Bouquet",
		Category:    CategoryBouquets,
		Price:       2500,
		Images:      []string{"/products/bouquets/midnight_bloom.png"},
		Description: "Enchanting dark-themed bouquet with deep purple and blue tones. Perfect for creating a dramatic, elegant atmosphere.",
		InStock:     true,
	},
	{
		ID:          "bouquet-sunflower-duo",
		Name:        "Sunflower Duo Bouquet",
		Category:    CategoryBouquets,
		Price:       2200,
		Images:      []string{"/products/bouquets/sunflower_duo.png"},
		Description: "Cheerful sunflower bouquet that radiates warmth and happiness. Bright and beautiful, never wilts.",
		InStock:     true,
	},
	{
		ID:          "bouquet-sweetheart-stitches",
		Name:        "SweetHeart Stitches Bouquet",
		Category:    CategoryBouquets,
		Price:       2800,
		Images:      []string{"/products/bouquets/sweetheart_stitches.png"},
		Description: "Romantic bouquet crafted with love and care. Perfect for expressing your heartfelt emotions.",
		InStock:     true,
	},
	{
		ID:          "bouquet-signature-sunshine",
		Name:        "The Signature Sunshine Bouquet",
		Category:    CategoryBouquets,
		Price:       3000,
		Images:      []string{"/products/bouquets/signature_sunshine.png"},
		Description: "Our signature bouquet featuring vibrant yellow blooms. Brings sunshine and joy to any space.",
		InStock:     true,
	},

	{
		ID:          "coaster-elegant",
		Name:        "Elegant Coaster",
		Category:    CategoryCoasters,
		Price:       400,
		Images:      []string{"/products/coasters/elegant.png"},
		Description: "Delicate pink coaster handcrafted with care. Perfect for protecting your surfaces in style.",
		InStock:     true,
		Colors:      []string{"Light Pink", "Dark Pink", "Light Purple", "Dark Purple", "Maroon", "Light Blue", "Dark Blue", "Off-white", "Yellow", "Green", "Brown", "Skin"},
	},
	{
		ID:          "coaster-rose",
		Name:        "Rose Coaster",
		Category:    CategoryCoasters,
		Price:       450,
		Images:      []string{"/products/coasters/rose.png"},
		Description: "Beautiful rose-themed coaster that adds elegance to your table. Functional and decorative.",
		InStock:     true,
	},

	{
		ID:          "keychain-cherry",
		Name:        "Cherry Keychain",
		Category:    CategoryKeychains,
		Price:       350,
		Images:      []string{"/products/keychains/cherry.png"},
		Description: "Adorable cherry keychain to brighten up your keys. Sweet and charming accessory.",
		InStock:     true,
	},
	{
		ID:          "keychain-honeybee",
		Name:        "HoneyBee Keychain",
		Category:    CategoryKeychains,
		Price:       400,
		Images:      []string{"/products/keychains/honeybee.png"},
		Description: "Cute honeybee keychain crafted with attention to detail. Perfect for bee lovers!",
		InStock:     true,
	},
	{
		ID:          "keychain-panda",
		Name:        "Panda Keychain",
		Category:    CategoryKeychains,
		Price:       450,
		Images:      []string{"/products/keychains/panda.png"},
		Description: "Lovable panda keychain handmade with premium yarn. Makes a perfect gift or personal accessory.",
		InStock:     true,
	},

	{
		ID:          "bracelet-berry-bliss",
		Name:        "Berry Bliss Bracelet",
		Category:    CategoryBracelets,
		Price:       600,
		Images:      []string{"/products/bracelets/berry_bliss.png"},
		Description: "Sweet berry-themed bracelet with delightful colors. A charming accessory for any occasion.",
		InStock:     true,
	},
	{
		ID:          "bracelet-butterfly-skyblue",
		Name:        "Butterfly Sky Blue Bracelet",
		Category:    CategoryBracelets,
		Price:       650,
		Images:      []string{"/products/bracelets/butterfly_skyblue.png"},
		Description: "Beautiful sky blue bracelet adorned with butterfly charm. Elegant and whimsical.",
		InStock:     true,
	},
}

var index = buildIndex()

func buildIndex() map[string]Item {
	idx := make(map[string]Item, len(registry))
	for _, item := range registry {
		idx[item.ID] = item
	}
	return idx
}
