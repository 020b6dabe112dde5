package database

type seedCountry struct {
	name         string
	code         string
	currencyCode string
	currencyName string
	cities       []string
}

type seedCategory struct {
	name          string
	subcategories []string
}

var referenceCountries = []seedCountry{
	{"Japan", "JP", "JPY", "Japanese Yen", []string{"Tokyo", "Osaka", "Kyoto", "Fukuoka", "Sapporo", "Okinawa"}},
	{"China", "CN", "CNY", "Chinese Yuan", []string{"Beijing", "Shanghai", "Qingdao"}},
	{"Taiwan", "TW", "TWD", "New Taiwan Dollar", []string{"Taipei", "Kaohsiung"}},
	{"Thailand", "TH", "THB", "Thai Baht", []string{"Bangkok", "Chiang Mai", "Phuket"}},
	{"Vietnam", "VN", "VND", "Vietnamese Dong", []string{"Hanoi", "Ho Chi Minh City", "Da Nang"}},
	{"Philippines", "PH", "PHP", "Philippine Peso", []string{"Manila", "Cebu", "Boracay"}},
	{"Singapore", "SG", "SGD", "Singapore Dollar", []string{"Singapore"}},
	{"Indonesia", "ID", "IDR", "Indonesian Rupiah", []string{"Jakarta", "Bali"}},
	{"Malaysia", "MY", "MYR", "Malaysian Ringgit", []string{"Kuala Lumpur", "Kota Kinabalu"}},
	{"Guam", "GU", "USD", "United States Dollar", []string{"Tamuning"}},
	{"USA", "US", "USD", "United States Dollar", []string{"New York", "Los Angeles", "Honolulu"}},
}

var referenceCategories = []seedCategory{
	{"Food", []string{"Instant Food", "Snacks", "Seasoning", "Beverages"}},
	{"Clothing", []string{"Tops", "Bottoms", "Shoes", "Accessories"}},
	{"Goods", []string{"Household", "Stationery", "Electronics", "Toys"}},
	{"Cosmetics", []string{"Skin Care", "Makeup", "Hair Care", "Fragrance"}},
}

var referenceTags = []string{"Spicy", "Sweet", "Halal", "Vegan", "Gift", "Limited Edition"}
