package colour

import (
	"math"
	"strconv"
)

// formatNumber rounds v to prec decimals and prints it without trailing
// zeros, so 254.99999 prints as "255" and 0.5 as "0.5".
func formatNumber(v float64, prec int) string {
	scale := math.Pow(10, float64(prec))
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func formatPercent(v float64) string {
	return formatNumber(v*100, 2) + "%"
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
func radians(deg float64) float64 { return deg * math.Pi / 180 }
