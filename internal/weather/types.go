package weather

// CountryCode is the only country the client queries.
const CountryCode = "us"

// DefaultEndpoint is the OpenWeatherMap current-weather URL.
const DefaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// Query identifies the location to look up and the credential to use.
type Query struct {
	PostalCode  int
	CountryCode string
	APIKey      string
}

// NewQuery builds a Query for a US postal code.
func NewQuery(postalCode int, apiKey string) Query {
	return Query{PostalCode: postalCode, CountryCode: CountryCode, APIKey: apiKey}
}

// Response holds the fields of the API payload the report needs.
// Temperatures are in Kelvin, as returned by the API.
type Response struct {
	Description string
	Temp        float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    int
}

// payload mirrors the JSON body of a current-weather response. Fields are
// pointers so an absent key can be told apart from a zero reading.
type payload struct {
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		TempMin   *float64 `json:"temp_min"`
		TempMax   *float64 `json:"temp_max"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
}

// apiError is the body OpenWeatherMap sends alongside a non-2xx status.
type apiError struct {
	Message string `json:"message"`
}
