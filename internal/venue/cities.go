package venue

import (
	"strconv"
	"strings"
)

var sampleCities = []City{
	{Name: "Reykjavik", Country: "Iceland", Lat: 64.1466, Lng: -21.9426},
	{Name: "Tallinn", Country: "Estonia", Lat: 59.4370, Lng: 24.7536},
	{Name: "Ljubljana", Country: "Slovenia", Lat: 46.0569, Lng: 14.5058},
	{Name: "Porto", Country: "Portugal", Lat: 41.1579, Lng: -8.6291},
	{Name: "Bruges", Country: "Belgium", Lat: 51.2093, Lng: 3.2247},
	{Name: "Bergen", Country: "Norway", Lat: 60.3913, Lng: 5.3221},
	{Name: "Gdansk", Country: "Poland", Lat: 54.3520, Lng: 18.6466},
	{Name: "Brasov", Country: "Romania", Lat: 45.6579, Lng: 25.6012},
	{Name: "Vilnius", Country: "Lithuania", Lat: 54.6872, Lng: 25.2797},
	{Name: "Salzburg", Country: "Austria", Lat: 47.8095, Lng: 13.0550},
}

// SampleCities returns a copy of the ten-city panel.
func SampleCities() []City {
	out := make([]City, len(sampleCities))
	copy(out, sampleCities)
	return out
}

func findCity(cities []City, name string) (City, bool) {
	name = strings.TrimSpace(name)
	for _, c := range cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}

func formatCoords(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', 4, 64) + "," + strconv.FormatFloat(lng, 'f', 4, 64)
}
