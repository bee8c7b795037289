package pedid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prequel-dev/pedid/internal/pkg/descriptor"
	"github.com/prequel-dev/pedid/internal/pkg/zerr"
)

const (
	// Largest millimeter value a detailed timing descriptor can hold.
	MaxMillimeters = descriptor.MaxMillimeters

	// Largest centimeter value the base block can hold.
	MaxCentimeters = 0xFF
)

// Dimensions is a physical image size in millimeters.
type Dimensions struct {
	Width  uint
	Height uint
}

// ParseDimensions parses "WIDTHxHEIGHT", two decimal millimeter values.
func ParseDimensions(s string) (Dimensions, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: '%s' is not WIDTHxHEIGHT", zerr.ErrDimensionInput, s)
	}

	w, err := strconv.ParseUint(ws, 10, 0)
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: width '%s'", zerr.ErrDimensionInput, ws)
	}

	h, err := strconv.ParseUint(hs, 10, 0)
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: height '%s'", zerr.ErrDimensionInput, hs)
	}

	return Dimensions{Width: uint(w), Height: uint(h)}, nil
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Centimeters rounds both axes to the nearest centimeter, ties to even.
func (d Dimensions) Centimeters() (width, height uint) {
	return mmToCm(d.Width), mmToCm(d.Height)
}

// Validate fails with ErrDimensionRange if either axis does not fit the
// 12 bit descriptor fields or the single byte base block fields.
func (d Dimensions) Validate() error {
	wCm, hCm := d.Centimeters()

	switch {
	case d.Width > MaxMillimeters:
		return fmt.Errorf("%w: width %d mm > %d mm", zerr.ErrDimensionRange, d.Width, MaxMillimeters)
	case d.Height > MaxMillimeters:
		return fmt.Errorf("%w: height %d mm > %d mm", zerr.ErrDimensionRange, d.Height, MaxMillimeters)
	case wCm > MaxCentimeters:
		return fmt.Errorf("%w: width %d cm > %d cm", zerr.ErrDimensionRange, wCm, MaxCentimeters)
	case hCm > MaxCentimeters:
		return fmt.Errorf("%w: height %d cm > %d cm", zerr.ErrDimensionRange, hCm, MaxCentimeters)
	}

	return nil
}

func mmToCm(mm uint) uint {
	q, r := mm/10, mm%10
	if r > 5 || (r == 5 && q%2 == 1) {
		q++
	}
	return q
}
