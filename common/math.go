package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// RandRange maps a unit sample u in [0,1) onto [lo, hi).
func RandRange(lo, hi, u float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Lerp(lo, hi, u)
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
