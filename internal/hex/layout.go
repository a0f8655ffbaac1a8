package hex

import "math"

// ToPixel converts h to the pixel center of a pointy-top hex whose corner
// radius is size, relative to the origin hex at (0, 0).
func ToPixel(h Hex, size float64) (x, y float64) {
	x = size * (math.Sqrt(3)*float64(h.Q) + math.Sqrt(3)/2*float64(h.R))
	y = size * 1.5 * float64(h.R)
	return
}

// FromPixel returns the hex containing the pixel (x, y) for the same layout
// as ToPixel.
func FromPixel(x, y, size float64) Hex {
	qf := (math.Sqrt(3)/3*x - y/3) / size
	rf := (2.0 / 3.0 * y) / size
	q, r, _ := cubeRound(qf, rf, -qf-rf)
	return Hex{q, r}
}

// Corners returns the six corner points of h, starting at 30 degrees.
func Corners(h Hex, size float64) [6][2]float64 {
	cx, cy := ToPixel(h, size)
	var pts [6][2]float64
	for i := 0; i < 6; i++ {
		a := math.Pi / 3 * (float64(i) + 0.5)
		pts[i] = [2]float64{cx + size*math.Cos(a), cy + size*math.Sin(a)}
	}
	return pts
}

// cubeRound rounds fractional cube coordinates to the nearest hex, fixing
// the component with the largest rounding error so that q+r+s stays 0.
func cubeRound(xf, yf, zf float64) (int, int, int) {
	rx := math.Round(xf)
	ry := math.Round(yf)
	rz := math.Round(zf)

	dx := math.Abs(rx - xf)
	dy := math.Abs(ry - yf)
	dz := math.Abs(rz - zf)

	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}
	return int(rx), int(ry), int(rz)
}
