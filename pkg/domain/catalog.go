package domain

// Fixed catalogs the generator draws transaction attributes from.
var (
	Merchants = []string{
		"Amazon",
		"Walmart",
		"Airlines",
		"Hotels",
		"Restaurants",
		"Gas Stations",
		"Online Stores",
	}

	Categories = []string{
		"Food",
		"Shopping",
		"Travel",
		"Bills",
		"Entertainment",
		"Healthcare",
		"Education",
	}

	Locations = []string{
		"New York",
		"Los Angeles",
		"Chicago",
		"Houston",
		"Miami",
		"Seattle",
		"Boston",
	}
)
