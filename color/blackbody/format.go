package blackbody

import "strconv"

func formatKelvin(T float64) string {
	return strconv.FormatFloat(T, 'f', -1, 64) + "K"
}
