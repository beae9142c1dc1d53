// Package weather fetches current conditions for a US postal code from the
// OpenWeatherMap "current weather" endpoint. A Client issues exactly one
// request per call and never retries; every failure is reported as a
// *FetchError.
package weather
