package verticals

// Names is the fixed vertical taxonomy. Order matters: generation takes a
// prefix of this list, and the persisted master file preserves it.
var Names = []string{
	// Electronics & Technology
	"smartphones", "laptops", "tablets", "televisions", "cameras", "audio equipment",
	"wearables", "gaming consoles", "computer accessories", "smart home devices",
	"drones", "virtual reality", "networking equipment", "software", "electronics accessories",

	// Fashion & Apparel
	"womens clothing", "mens clothing", "kids clothing", "shoes", "bags & luggage",
	"watches", "jewelry", "sunglasses", "hats & caps", "belts & accessories",
	"activewear", "swimwear", "lingerie", "formal wear", "streetwear",
	"plus size fashion", "maternity wear", "traditional clothing",

	// Home & Living
	"furniture", "home decor", "bedding", "bath", "kitchen & dining",
	"lighting", "storage & organization", "curtains & blinds", "rugs & carpets",
	"wall art", "indoor plants", "home improvement", "cleaning supplies",
	"laundry supplies", "pest control", "home security",

	// Health & Beauty
	"skincare", "makeup", "haircare", "fragrances", "personal care",
	"medical supplies", "vitamins & supplements", "sexual wellness",
	"oral care", "mens grooming", "spa & relaxation", "health monitors",

	// Food & Beverages
	"groceries", "beverages", "snacks", "gourmet food", "organic food",
	"international cuisine", "dietary supplements", "baby food", "pet food",
	"meal kits",

	// Sports & Outdoors
	"fitness equipment", "outdoor recreation", "cycling", "camping & hiking",
	"water sports", "winter sports", "team sports", "yoga & pilates",
	"hunting & fishing", "golf", "tennis & racquet sports", "sports nutrition",

	// Baby & Kids
	"baby care", "baby gear", "baby toys", "kids toys", "kids books",
	"school supplies", "kids furniture", "kids safety",

	// Automotive
	"car accessories", "car electronics", "car parts", "motorcycle accessories",
	"car care", "tools & equipment", "tires & wheels",

	// Books & Media
	"books", "ebooks", "audiobooks", "magazines", "movies & tv",
	"music & vinyl",

	// Hobbies & Crafts
	"arts & crafts", "sewing & fabric", "painting supplies", "musical instruments",
	"photography", "collectibles", "model building", "scrapbooking",
	"party supplies", "seasonal decor",

	// Pet Supplies
	"dog supplies", "cat supplies", "bird supplies", "fish & aquarium",
	"small animal supplies", "reptile supplies",

	// Office & Stationery
	"office supplies", "stationery", "office furniture", "printers & ink",
	"business equipment", "presentation supplies", "desk accessories",

	// Garden & Outdoor
	"gardening tools", "plants & seeds", "outdoor furniture", "grills & outdoor cooking",
	"lawn care", "outdoor lighting",

	// Appliances
	"kitchen appliances", "home appliances", "air quality", "vacuum cleaners",
	"small appliances",

	// Miscellaneous
	"luggage & travel", "gift cards", "handmade products", "vintage items",
	"refurbished products", "wedding supplies", "religious items", "industrial supplies",
}
