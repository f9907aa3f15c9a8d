package catalog

import "time"

var catalogUpdated = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

// mc builds one monthly record; the month name is filled in by New.
func mc(month, level int, w Weather, school bool, holidays, events []string, cruise int, desc, rec string) MonthlyCrowd {
	return MonthlyCrowd{
		Month:      month,
		CrowdLevel: level,
		Factors: Factors{
			Weather:            w,
			SchoolHolidays:     school,
			PublicHolidays:     holidays,
			LocalEvents:        events,
			CruiseShips:        cruise,
			WeatherDescription: desc,
		},
		Recommendation: rec,
	}
}

func list(s ...string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// DefaultProfiles returns a fresh copy of the built-in destination table,
// based on published tourism seasonality for each destination.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Destination: "Azores",
			Country:     "Portugal",
			Region:      "Europe",
			PeakMonths:  []int{7, 8},
			BestMonths:  []int{10, 11, 3, 4},
			LastUpdated: catalogUpdated,
			Listing: Listing{
				PriceRange:      "$$",
				AverageCost:     1200,
				Activities:      list("Hiking", "Wildlife", "Beach", "Nature"),
				Highlights:      list("Volcanic landscapes", "Hot springs", "Hiking trails", "Crater lakes"),
				Description:     "A stunning archipelago with volcanic landscapes, pristine nature, and minimal crowds year-round.",
				Airport:         "João Paulo II Airport",
				AirportDistance: "2km",
			},
			YearlyData: []MonthlyCrowd{
				mc(1, 15, WeatherFair, false, list("New Year"), list(), 1, "Mild, rainy periods", "Perfect for whale watching. Very few tourists, authentic local experience."),
				mc(2, 12, WeatherFair, false, list(), list("Carnival"), 1, "Cool, occasional rain", "Lowest crowds of the year. Ideal for hiking and hot springs."),
				mc(3, 18, WeatherGood, false, list(), list(), 2, "Spring weather begins", "Great weather starts, still very uncrowded. Perfect timing."),
				mc(4, 22, WeatherGood, true, list("Easter"), list("Easter festivals"), 3, "Pleasant spring weather", "Beautiful weather, moderate crowds. Excellent for all activities."),
				mc(5, 28, WeatherExcellent, false, list("Labor Day"), list("Espírito Santo festivals"), 4, "Perfect weather", "Ideal weather begins but still reasonable crowds."),
				mc(6, 35, WeatherExcellent, true, list(), list("São João festivals"), 6, "Dry, warm weather", "Great weather but crowds are building. Book early."),
				mc(7, 45, WeatherExcellent, true, list(), list("Summer festivals"), 8, "Peak summer weather", "Peak season begins. Expect higher prices and more tourists."),
				mc(8, 50, WeatherExcellent, true, list(), list("São Bartolomeu"), 9, "Warmest, driest month", "Peak tourist season. Book accommodations well in advance."),
				mc(9, 35, WeatherExcellent, false, list(), list(), 6, "Still warm, less rain", "Perfect balance of weather and manageable crowds."),
				mc(10, 25, WeatherGood, false, list(), list(), 4, "Mild weather, more rain", "Excellent time to visit. Good weather, fewer tourists."),
				mc(11, 18, WeatherFair, false, list(), list(), 2, "Cooler, rainier", "Very peaceful, still good for hiking and whale watching."),
				mc(12, 20, WeatherFair, true, list("Christmas", "New Year"), list("Christmas markets"), 2, "Mild winter weather", "Quiet period with festive atmosphere. Good for cultural experiences."),
			},
		},
		{
			Destination: "Faroe Islands",
			Country:     "Denmark",
			Region:      "Europe",
			PeakMonths:  []int{6, 7, 8},
			BestMonths:  []int{5, 9, 10},
			LastUpdated: catalogUpdated,
			Listing: Listing{
				PriceRange:      "$$$",
				AverageCost:     1800,
				Activities:      list("Hiking", "Photography", "Wildlife", "Cultural"),
				Highlights:      list("Dramatic cliffs", "Northern lights", "Grass-roof houses", "Pristine nature"),
				Description:     "Remote Nordic islands offering dramatic landscapes and authentic cultural experiences.",
				Airport:         "Vágar Airport",
				AirportDistance: "45km",
			},
			YearlyData: []MonthlyCrowd{
				mc(1, 8, WeatherPoor, false, list("New Year"), list(), 0, "Dark, stormy, cold", "Very challenging weather but ultimate solitude. For hardy travelers only."),
				mc(2, 6, WeatherPoor, false, list(), list(), 0, "Cold, windy, limited daylight", "Lowest tourist numbers. Northern lights possible."),
				mc(3, 10, WeatherPoor, false, list(), list(), 0, "Still cold but daylight returning", "Weather improving slightly. Very few visitors."),
				mc(4, 12, WeatherFair, true, list("Easter"), list(), 1, "Spring begins, milder weather", "Weather becomes more pleasant. Good time for bird watching."),
				mc(5, 18, WeatherGood, false, list(), list(), 2, "Much better weather", "Excellent time - good weather, minimal crowds. Highly recommended."),
				mc(6, 25, WeatherGood, true, list(), list("Ólavsøka preparations"), 4, "Long days, mild weather", "Peak hiking season begins. Still manageable tourist numbers."),
				mc(7, 35, WeatherExcellent, true, list("Ólavsøka"), list("Ólavsøka festival"), 6, "Best weather of the year", "Peak season with best weather. National festival period."),
				mc(8, 30, WeatherGood, true, list(), list(), 5, "Still good weather", "High season continues. Great for hiking and photography."),
				mc(9, 20, WeatherGood, false, list(), list(), 3, "Autumn begins, still pleasant", "Perfect balance - good weather, fewer tourists. Highly recommended."),
				mc(10, 15, WeatherFair, false, list(), list(), 2, "Cooler, more unsettled", "Quieter period. Good for northern lights and storm watching."),
				mc(11, 10, WeatherPoor, false, list(), list(), 1, "Stormy, shorter days", "Very quiet. Dramatic weather and possible northern lights."),
				mc(12, 8, WeatherPoor, true, list("Christmas"), list("Christmas traditions"), 0, "Dark, cold winter", "Lowest tourist numbers. Experience authentic island winter life."),
			},
		},
		{
			Destination: "Saguenay Fjord",
			Country:     "Canada",
			Region:      "North America",
			PeakMonths:  []int{7, 8},
			BestMonths:  []int{6, 9, 10},
			LastUpdated: catalogUpdated,
			Listing: Listing{
				PriceRange:      "$$",
				AverageCost:     1400,
				Activities:      list("Wildlife", "Water sports", "Nature", "Cultural"),
				Highlights:      list("Whale watching", "Fjord landscapes", "Kayaking", "Indigenous culture"),
				Description:     "One of the world's southernmost fjords with exceptional whale watching opportunities.",
				Airport:         "Bagotville Airport",
				AirportDistance: "30km",
			},
			YearlyData: []MonthlyCrowd{
				mc(1, 12, WeatherPoor, false, list("New Year"), list(), 0, "Very cold, snow activities", "Winter activities like ice fishing and snowshoeing. Very peaceful."),
				mc(2, 10, WeatherPoor, false, list(), list(), 0, "Cold winter conditions", "Lowest crowds. Perfect for winter wildlife observation."),
				mc(3, 15, WeatherPoor, true, list(), list(), 0, "Late winter, variable conditions", "Spring break period but still winter conditions. Very quiet."),
				mc(4, 18, WeatherFair, false, list("Easter"), list(), 1, "Spring thaw begins", "Nature awakening, few tourists. Great for hiking preparation."),
				mc(5, 25, WeatherGood, false, list(), list(), 2, "Pleasant spring weather", "Excellent time - good weather, minimal crowds. Wildlife active."),
				mc(6, 35, WeatherExcellent, true, list(), list(), 4, "Perfect weather begins", "Whale watching season starts. Great weather, moderate crowds."),
				mc(7, 55, WeatherExcellent, true, list("Canada Day"), list("Summer festivals"), 8, "Peak summer weather", "Peak whale watching season. Expect crowds but amazing wildlife."),
				mc(8, 50, WeatherExcellent, true, list(), list(), 7, "Warm summer weather", "High season continues. Best whale watching but book early."),
				mc(9, 35, WeatherGood, false, list(), list(), 4, "Beautiful autumn weather", "Perfect time - great weather, fewer crowds, stunning fall colors."),
				mc(10, 25, WeatherGood, false, list("Thanksgiving"), list(), 2, "Cool, crisp autumn", "Stunning fall foliage, few tourists. Excellent for photography."),
				mc(11, 15, WeatherFair, false, list(), list(), 1, "Cool, transitioning to winter", "Very quiet period. Good for winter preparation activities."),
				mc(12, 12, WeatherPoor, true, list("Christmas"), list("Winter celebrations"), 0, "Winter conditions return", "Peaceful winter setting. Perfect for cozy cabin experiences."),
			},
		},
		{
			Destination: "Raja Ampat",
			Country:     "Indonesia",
			Region:      "Asia",
			PeakMonths:  []int{7, 8, 9},
			BestMonths:  []int{4, 5, 10, 11},
			LastUpdated: catalogUpdated,
			Listing: Listing{
				PriceRange:      "$$$",
				AverageCost:     2000,
				Activities:      list("Water sports", "Wildlife", "Nature", "Adventure"),
				Highlights:      list("Marine biodiversity", "Diving", "Remote islands", "Pristine reefs"),
				Description:     "The crown jewel of marine biodiversity with world-class diving and minimal tourism impact.",
				Airport:         "Domine Eduard Osok Airport",
				AirportDistance: "2 hours by boat",
			},
			YearlyData: []MonthlyCrowd{
				mc(1, 25, WeatherFair, true, list("New Year"), list(), 3, "Wet season, frequent rain", "Rainy season but good diving visibility. Fewer crowds than dry season."),
				mc(2, 22, WeatherFair, false, list(), list(), 2, "Still wet season", "Good for diving, occasional rain. Quiet period for tourism."),
				mc(3, 20, WeatherGood, false, list(), list(), 2, "Transitioning to dry season", "Weather improving, very manageable crowds. Great diving conditions."),
				mc(4, 15, WeatherExcellent, false, list(), list(), 2, "Dry season begins", "Perfect conditions start. Excellent diving, minimal crowds."),
				mc(5, 18, WeatherExcellent, false, list(), list(), 3, "Ideal weather conditions", "Excellent time - perfect weather, low crowds. Highly recommended."),
				mc(6, 22, WeatherExcellent, true, list(), list(), 4, "Peak diving conditions", "Great conditions but crowds building for peak season."),
				mc(7, 35, WeatherExcellent, true, list(), list(), 6, "Perfect weather, calm seas", "Peak season begins. Best conditions but expect more divers."),
				mc(8, 40, WeatherExcellent, true, list(), list(), 7, "Ideal conditions continue", "Peak tourist season. Amazing diving but book well in advance."),
				mc(9, 35, WeatherExcellent, false, list(), list(), 6, "Still excellent conditions", "High season continues but slightly fewer crowds."),
				mc(10, 25, WeatherExcellent, false, list(), list(), 4, "Perfect conditions", "Excellent time - perfect weather, manageable crowds."),
				mc(11, 20, WeatherGood, false, list(), list(), 3, "Still good, transitioning", "Great balance of good conditions and fewer tourists."),
				mc(12, 28, WeatherFair, true, list("Christmas"), list(), 4, "Wet season approaching", "Holiday season brings more visitors. Weather still decent."),
			},
		},
		{
			Destination: "North Macedonia",
			Country:     "North Macedonia",
			Region:      "Europe",
			PeakMonths:  []int{7, 8},
			BestMonths:  []int{5, 6, 9, 10},
			LastUpdated: catalogUpdated,
			Listing: Listing{
				PriceRange:      "$",
				AverageCost:     700,
				Activities:      list("Cultural", "Hiking", "Food & Drink", "Museums"),
				Highlights:      list("Ohrid Lake", "Orthodox monasteries", "Wine regions", "Mountain hiking"),
				Description:     "A hidden Balkan gem with stunning lakes, rich history, and authentic experiences.",
				Airport:         "Skopje Airport",
				AirportDistance: "25km",
			},
			YearlyData: []MonthlyCrowd{
				mc(1, 20, WeatherPoor, false, list("New Year", "Orthodox Christmas"), list(), 0, "Cold winter weather", "Quiet winter period. Good for cultural sites and city exploration."),
				mc(2, 18, WeatherPoor, false, list(), list(), 0, "Cold, occasional snow", "Low season continues. Perfect for museums and indoor attractions."),
				mc(3, 25, WeatherFair, false, list(), list(), 0, "Spring begins, milder", "Weather improving, still uncrowded. Good for city walks."),
				mc(4, 30, WeatherGood, true, list("Easter"), list("Easter celebrations"), 0, "Pleasant spring weather", "Beautiful spring weather begins. Moderate crowds, perfect timing."),
				mc(5, 35, WeatherExcellent, false, list("Labor Day"), list(), 0, "Ideal weather conditions", "Perfect weather starts. Great for all outdoor activities."),
				mc(6, 40, WeatherExcellent, true, list(), list("Summer festivals begin"), 0, "Warm, sunny weather", "Excellent conditions, moderate crowds. Festivals and events start."),
				mc(7, 55, WeatherExcellent, true, list(), list("Ohrid Summer Festival"), 0, "Hot summer weather", "Peak season. Major festivals but expect higher crowds and prices."),
				mc(8, 50, WeatherExcellent, true, list(), list("Wine festivals"), 0, "Very hot, dry weather", "High season continues. Hot weather, perfect for lakes and mountains."),
				mc(9, 40, WeatherExcellent, false, list(), list("Harvest festivals"), 0, "Perfect autumn weather", "Ideal time - excellent weather, manageable crowds. Highly recommended."),
				mc(10, 35, WeatherGood, false, list(), list(), 0, "Pleasant fall weather", "Great weather continues, fewer tourists. Perfect for hiking."),
				mc(11, 25, WeatherFair, false, list(), list(), 0, "Cooler, variable weather", "Quiet period, still decent weather. Good for cultural exploration."),
				mc(12, 22, WeatherPoor, true, list("Christmas"), list("Christmas markets"), 0, "Cold, winter conditions", "Festive atmosphere, winter activities. Christmas markets in Skopje."),
			},
		},
		{
			Destination: "Estonian Islands",
			Country:     "Estonia",
			Region:      "Europe",
			PeakMonths:  []int{6, 7, 8},
			BestMonths:  []int{5, 9},
			LastUpdated: catalogUpdated,
			Listing: Listing{
				PriceRange:      "$",
				AverageCost:     800,
				Activities:      list("Cultural", "Beach", "Museums", "Nature"),
				Highlights:      list("Medieval castles", "Pristine beaches", "Local culture", "Forests"),
				Description:     "Unspoiled Baltic islands with rich history, beautiful nature, and budget-friendly prices.",
				Airport:         "Tallinn Airport",
				AirportDistance: "25km + ferry",
			},
			YearlyData: []MonthlyCrowd{
				mc(1, 8, WeatherPoor, false, list("New Year"), list(), 0, "Very cold, snow and ice", "Extremely quiet. Only for those seeking complete solitude."),
				mc(2, 6, WeatherPoor, false, list(), list(), 0, "Cold winter conditions", "Lowest tourist numbers. Authentic winter island experience."),
				mc(3, 10, WeatherPoor, false, list(), list(), 0, "Late winter, still cold", "Very quiet, weather still challenging. Perfect for photography."),
				mc(4, 15, WeatherFair, true, list("Easter"), list(), 1, "Spring begins, milder", "Nature awakening, few visitors. Great for bird watching."),
				mc(5, 22, WeatherGood, false, list("Labor Day"), list(), 2, "Pleasant spring weather", "Perfect timing - good weather, minimal crowds. Highly recommended."),
				mc(6, 35, WeatherExcellent, true, list("Midsummer"), list("Midsummer celebrations"), 4, "White nights, warm weather", "Peak season begins. Midsummer festivities but manageable crowds."),
				mc(7, 45, WeatherExcellent, true, list(), list("Summer festivals"), 6, "Warmest weather of year", "High season. Best weather but expect crowds at popular sites."),
				mc(8, 40, WeatherExcellent, true, list(), list(), 5, "Still warm and pleasant", "Peak season continues. Great weather, busiest time of year."),
				mc(9, 25, WeatherGood, false, list(), list(), 3, "Beautiful autumn weather", "Excellent time - good weather, fewer crowds. Perfect balance."),
				mc(10, 18, WeatherFair, false, list(), list(), 2, "Cool autumn weather", "Quiet period, still decent weather. Good for hiking and exploration."),
				mc(11, 12, WeatherPoor, false, list(), list(), 1, "Cold, getting darker", "Very quiet, challenging weather. For serious travelers only."),
				mc(12, 10, WeatherPoor, true, list("Christmas"), list("Christmas traditions"), 0, "Cold winter, limited daylight", "Peaceful winter setting. Experience authentic island Christmas."),
			},
		},
	}
}
