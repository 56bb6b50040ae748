package xgeom

// Medium identifies the participating medium a ray is currently
// traveling through. The kernel never inspects it: the value is a
// borrowed handle owned by whatever defines the scene's media, and nil
// means vacuum.
type Medium any

// Ray is a parametric line: Origin + Direction*t. TMax is a parameter
// ceiling stored on behalf of intersection code, which clamps it as
// hits are found; the kernel itself never enforces it. Time places the
// ray within a frame's shutter interval for moving geometry.
type Ray struct {
	Origin    Point3f
	Direction Vector3f
	TMax      Float
	Time      Float
	Medium    Medium
}

// NewRay returns a ray from o along d with TMax at +infinity, Time
// zero, and no medium. Callers needing the remaining fields set them
// on the returned value.
func NewRay(o Point3f, d Vector3f) Ray {
	return Ray{Origin: o, Direction: d, TMax: infinity}
}

// At returns the position at parameter t along the ray. TMax is not
// consulted; callers comparing against the ceiling do so themselves.
func (r Ray) At(t Float) Point3f {
	return r.Origin.Add(r.Direction.Scale(t))
}

// HasNaN reports whether the origin, direction, or TMax contains NaN.
func (r Ray) HasNaN() bool {
	return r.Origin.HasNaN() || r.Direction.HasNaN() || isNaN(r.TMax)
}

// RayDifferential is a ray carrying two auxiliary rays offset by one
// pixel on each image-plane axis. Texture filtering uses the auxiliary
// data to estimate the footprint a pixel projects onto a surface.
// While HasDifferentials is false the auxiliary fields are defaulted
// zero values, not meaningful data.
type RayDifferential struct {
	Ray
	HasDifferentials         bool
	RxOrigin, RyOrigin       Point3f
	RxDirection, RyDirection Vector3f
}

// NewRayDifferential returns a differential-less ray from o along d,
// with the same defaults as NewRay.
func NewRayDifferential(o Point3f, d Vector3f) RayDifferential {
	return RayDifferential{Ray: NewRay(o, d)}
}

// RayDifferentialFrom wraps an existing ray without differentials.
func RayDifferentialFrom(r Ray) RayDifferential {
	return RayDifferential{Ray: r}
}

// ScaleDifferentials rescales the auxiliary offsets about the primary
// ray by s, shrinking or growing the effective pixel footprint. Called
// with the actual sample spacing once the number of samples per pixel
// is known.
func (r *RayDifferential) ScaleDifferentials(s Float) {
	r.RxOrigin = r.Origin.Add(r.RxOrigin.Sub(r.Origin).Scale(s))
	r.RyOrigin = r.Origin.Add(r.RyOrigin.Sub(r.Origin).Scale(s))
	r.RxDirection = r.Direction.Add(r.RxDirection.Sub(r.Direction).Scale(s))
	r.RyDirection = r.Direction.Add(r.RyDirection.Sub(r.Direction).Scale(s))
}

// HasNaN reports whether the primary ray contains NaN, or the
// auxiliary data does while HasDifferentials is set. Unset auxiliary
// data is defaulted, not user-supplied, and is never checked.
func (r RayDifferential) HasNaN() bool {
	return r.Ray.HasNaN() || (r.HasDifferentials &&
		(r.RxOrigin.HasNaN() || r.RyOrigin.HasNaN() ||
			r.RxDirection.HasNaN() || r.RyDirection.HasNaN()))
}
