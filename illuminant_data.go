package colorimetry

// CIE daylight characteristic vectors S0, S1 and S2, 380-780 nm at
// 10 nm intervals, from the CIE 15 tabulation. S0 is the mean daylight
// vector, S1 the yellow-blue and S2 the pink-green deviation vector.
const (
	daylightMin  = 380.0
	daylightStep = 10.0
)

var daylightS0 = []float64{
	63.40, 65.80, 94.80, 104.80, 105.90, 96.80, 113.90, 125.60,
	125.50, 121.30, 121.30, 113.50, 113.10, 110.80, 106.50, 108.80,
	105.30, 104.40, 100.00, 96.00, 95.10, 89.10, 90.50, 90.30,
	88.40, 84.00, 85.10, 81.90, 82.60, 84.90, 81.30, 71.90,
	74.30, 76.40, 63.30, 71.70, 77.00, 65.20, 47.70, 68.60,
	65.00,
}

var daylightS1 = []float64{
	38.50, 35.00, 43.40, 46.30, 43.90, 37.10, 36.70, 35.90,
	32.60, 27.90, 24.30, 20.10, 16.20, 13.20, 8.60, 6.10,
	4.20, 1.90, 0.00, -1.60, -3.50, -3.50, -5.80, -7.20,
	-8.60, -9.50, -10.90, -10.70, -12.00, -14.00, -13.60, -12.00,
	-13.30, -12.90, -10.60, -11.60, -12.20, -10.20, -7.80, -11.20,
	-10.40,
}

var daylightS2 = []float64{
	3.00, 1.20, -1.10, -0.50, -0.70, -1.20, -2.60, -2.90,
	-2.80, -2.60, -2.60, -1.80, -1.50, -1.30, -1.20, -1.00,
	-0.50, -0.30, 0.00, 0.20, 0.50, 2.10, 3.20, 4.10,
	4.70, 5.10, 6.70, 7.30, 8.60, 9.80, 10.20, 8.30,
	9.60, 8.50, 7.00, 7.60, 8.00, 6.70, 5.20, 7.40,
	6.80,
}
