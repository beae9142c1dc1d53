package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/specialistvlad/zipweather/internal/units"
	"github.com/specialistvlad/zipweather/internal/weather"
)

// ColorMode controls whether the printer emits ANSI color codes.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a -color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be 'auto', 'always' or 'never'", s)
	}
}

// highlighted is the only description that gets highlighted.
const highlighted = "clear sky"

// IsHighlighted reports whether a description is shown highlighted. The
// comparison is exact: no case folding, no trimming.
func IsHighlighted(description string) bool {
	return description == highlighted
}

// Printer writes weather reports to an io.Writer.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter returns a Printer for out. In ColorAuto mode color is used only
// when out is a character device and gookit detects color support.
func NewPrinter(out io.Writer, mode ColorMode) *Printer {
	p := &Printer{out: out}
	switch mode {
	case ColorAlways:
		color.Enable = true
		color.ForceOpenColor()
		p.color = true
	case ColorAuto:
		p.color = isTerminal(out) && color.SupportColor()
	}
	return p
}

// Colored reports whether the printer emits color codes.
func (p *Printer) Colored() bool {
	return p.color
}

// Print renders the report for postalCode and resp in one write, so a
// failing writer never leaves half a report behind.
func (p *Printer) Print(postalCode int, resp *weather.Response) error {
	temp := units.KelvinToFahrenheit(resp.Temp)
	feelsLike := units.KelvinToFahrenheit(resp.FeelsLike)
	low := units.KelvinToFahrenheit(resp.TempMin)
	high := units.KelvinToFahrenheit(resp.TempMax)

	var b strings.Builder
	fmt.Fprintf(&b, "\n\tConditions for zipcode: %s\n", p.postalCode(postalCode))
	fmt.Fprintf(&b, "\tDescription:\t\t%s\n", p.description(resp.Description))
	fmt.Fprintf(&b, "\tCurrent Temperature:\t%s\n", p.temperature(temp))
	fmt.Fprintf(&b, "\tCurrent Feels Like:\t%s\n", p.temperature(feelsLike))
	fmt.Fprintf(&b, "\tCurrent Humidity:\t%d%%\n", resp.Humidity)
	fmt.Fprintf(&b, "\tToday's Low/High:\t%.0f/%.0f\n", low, high)

	if _, err := io.WriteString(p.out, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (p *Printer) postalCode(code int) string {
	s := strconv.Itoa(code)
	if !p.color {
		return s
	}
	return color.Green.Sprint(s)
}

func (p *Printer) description(d string) string {
	if !p.color || !IsHighlighted(d) {
		return d
	}
	return color.LightCyan.Sprint(d)
}

func (p *Printer) temperature(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	if !p.color {
		return s
	}
	return BandFor(f).paint(s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
