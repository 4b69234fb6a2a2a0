/*
Copyright © 2026 the GoSpatial authors.
This file is part of GoSpatial.

GoSpatial is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GoSpatial is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GoSpatial.  If not, see <http://www.gnu.org/licenses/>.
*/

package gospatial

import "math"

const (
	// earthRadiusKM is the mean radius used by the haversine formula.
	earthRadiusKM = 6371.0

	// WGS84 ellipsoid parameters, used by the Vincenty formula.
	wgs84SemiMajorM  = 6378137.0
	wgs84SemiMinorM  = 6356752.314245
	wgs84Flattening  = 1 / 298.257223563
	vincentyMaxIters = 100
)

// EuclideanDistance returns the planar distance between a and b in
// coordinate units.
func EuclideanDistance(a, b Vertex) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// HaversineDistance returns the great-circle distance in kilometers
// between two geographic vertices, with X holding longitude and Y
// latitude, both in degrees. The Earth is treated as a sphere of mean
// radius 6371 km.
func HaversineDistance(a, b Vertex) float64 {
	lat1, lat2 := degToRad(a.Y), degToRad(b.Y)
	dLat := lat2 - lat1
	dLon := degToRad(b.X - a.X)
	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * earthRadiusKM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// VincentyDistance returns the geodesic distance in meters between two
// geographic vertices on the WGS84 ellipsoid, with X holding longitude
// and Y latitude in degrees. The iteration occasionally fails to
// converge for nearly antipodal points; that case is reported as a
// *NumericInstabilityError.
func VincentyDistance(a, b Vertex) (float64, error) {
	if vertexSimilar(a, b, 0) {
		return 0, nil
	}
	f := wgs84Flattening
	l := degToRad(b.X - a.X)
	u1 := math.Atan((1 - f) * math.Tan(degToRad(a.Y)))
	u2 := math.Atan((1 - f) * math.Tan(degToRad(b.Y)))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := l
	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64
	converged := false
	for i := 0; i < vincentyMaxIters; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		t1 := cosU2 * sinLambda
		t2 := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(t1*t1 + t2*t2)
		if sinSigma == 0 {
			return 0, nil // coincident points
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			cos2SigmaM = 0 // equatorial line
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}
		c := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		prev := lambda
		lambda = l + (1-c)*f*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prev) < 1e-12 {
			converged = true
			break
		}
	}
	if !converged {
		return 0, &NumericInstabilityError{
			Op:     "VincentyDistance",
			Detail: "iteration did not converge; the points may be nearly antipodal",
		}
	}

	bb := wgs84SemiMinorM
	uSq := cosSqAlpha * (wgs84SemiMajorM*wgs84SemiMajorM - bb*bb) / (bb * bb)
	aa := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	cc := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := cc * sinSigma * (cos2SigmaM + cc/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			cc/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
	return bb * aa * (sigma - deltaSigma), nil
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
