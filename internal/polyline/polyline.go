// Package polyline decodes the standard encoded-polyline format used by
// mapping services: 5 bits per character offset by 63, bit 5 as continuation,
// zig-zag signed deltas accumulated from (0,0) and scaled by 1e-5.
package polyline

// Point is one decoded coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Decode decodes an encoded polyline into its coordinate sequence.
// An empty string yields an empty slice. Decoding is best-effort: malformed
// input is unpacked as far as the bit stream allows and never produces an
// error, matching the de-facto decoder behavior on mapping services.
func Decode(encoded string) []Point {
	points := make([]Point, 0, len(encoded)/4)
	var lat, lon int64

	i := 0
	next := func() (int64, bool) {
		var result int64
		var shift uint
		for {
			if i >= len(encoded) {
				return 0, false
			}
			b := int64(encoded[i]) - 63
			i++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		// zig-zag decode
		if result&1 != 0 {
			return ^(result >> 1), true
		}
		return result >> 1, true
	}

	for i < len(encoded) {
		dlat, ok := next()
		if !ok {
			break
		}
		dlon, ok := next()
		if !ok {
			break
		}
		lat += dlat
		lon += dlon
		points = append(points, Point{
			Lat: float64(lat) * 1e-5,
			Lon: float64(lon) * 1e-5,
		})
	}

	return points
}
