// Package units converts between temperature scales.
package units

// absoluteZeroC is 0 K expressed in degrees Celsius.
const absoluteZeroC = 273.15

// KelvinToFahrenheit converts a Kelvin temperature to degrees Fahrenheit.
func KelvinToFahrenheit(k float64) float64 {
	return (k-absoluteZeroC)*9/5 + 32
}
