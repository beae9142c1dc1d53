package report

import "github.com/gookit/color"

// Band is a closed-below Fahrenheit range mapped to a display color.
type Band int

const (
	BandBrightBlue Band = iota
	BandBlue
	BandCyan
	BandBrightGreen
	BandOrange
	BandBrightRed
	BandRed
)

// thresholds is ordered from hottest to coldest; the first match wins.
var thresholds = []struct {
	min  float64
	band Band
}{
	{100, BandRed},
	{85, BandBrightRed},
	{70, BandOrange},
	{55, BandBrightGreen},
	{40, BandCyan},
	{0, BandBlue},
}

// orange has no 16-color equivalent; gookit downgrades it on terminals
// without true-color support.
var orange = color.RGB(255, 128, 0)

// BandFor selects the band for a Fahrenheit temperature. A value sitting
// exactly on a threshold belongs to the higher band.
func BandFor(fahrenheit float64) Band {
	for _, t := range thresholds {
		if fahrenheit >= t.min {
			return t.band
		}
	}
	return BandBrightBlue
}

func (b Band) String() string {
	switch b {
	case BandRed:
		return "red"
	case BandBrightRed:
		return "bright red"
	case BandOrange:
		return "orange"
	case BandBrightGreen:
		return "bright green"
	case BandCyan:
		return "cyan"
	case BandBlue:
		return "blue"
	case BandBrightBlue:
		return "bright blue"
	default:
		return "unknown"
	}
}

// paint wraps s in the band's color codes.
func (b Band) paint(s string) string {
	switch b {
	case BandRed:
		return color.Red.Sprint(s)
	case BandBrightRed:
		return color.LightRed.Sprint(s)
	case BandOrange:
		return orange.Sprint(s)
	case BandBrightGreen:
		return color.LightGreen.Sprint(s)
	case BandCyan:
		return color.Cyan.Sprint(s)
	case BandBlue:
		return color.Blue.Sprint(s)
	case BandBrightBlue:
		return color.LightBlue.Sprint(s)
	default:
		return s
	}
}
