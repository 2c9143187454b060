package raytracer

import (
	"raytracer/bvh"
	"raytracer/geom"
	"raytracer/math/lin"
	"raytracer/scene"
)

// shader carries the per-render state every Shade call needs: the
// acceleration structure, the scene's lights, and the tunables that
// bound how much work one pixel's recursive shading does.
type shader struct {
	tree   *bvh.BVH
	lights []scene.Light
	cfg    Config
	trace  DebugTrace
}

// Shade traces ray through the scene and returns the shaded linear
// color: (0,0,0) for a miss, otherwise the sum over every light (each
// expanded into one or more virtual point lights) of that light's Phong
// diffuse+specular contribution, gated by a hard shadow ray, plus a
// recursively traced mirror-reflection term weighted by the surface's
// specular color, added once per virtual point light rather than once
// per hit.
func (s *shader) Shade(ray geom.Ray, depth int, px, py int) lin.Vec3 {
	var hit geom.HitInfo
	kind := "camera"
	if depth > 0 {
		kind = "reflection"
	}
	if !s.tree.Intersect(&ray, &hit) {
		s.trace.TraceRay(px, py, ray.Origin, ray.Direction, kind, false)
		return backgroundColor(ray.Direction)
	}
	s.trace.TraceRay(px, py, ray.Origin, ray.Direction, kind, true)

	point := ray.At()
	normal := faceForward(hit.Normal, ray.Direction)

	var reflected lin.Vec3
	hasReflection := depth < s.cfg.reflectDepth && !hit.Material.Ks.Eq(lin.V3(0, 0, 0))
	if hasReflection {
		reflectDir := reflect(ray.Direction, normal)
		reflectOrigin := point.Add(reflectDir.Scale(s.cfg.shadowBias))
		reflected = s.Shade(geom.NewRay(reflectOrigin, reflectDir), depth+1, px, py)
	}

	color := lin.V3(0, 0, 0)
	for _, light := range s.lights {
		for _, v := range virtualPointLights(light) {
			contribution := s.phong(point, normal, ray.Direction, hit.Material, v, px, py)
			if hasReflection {
				contribution = contribution.Add(reflected.Mul(hit.Material.Ks))
			}
			color = color.Add(contribution)
		}
	}

	return color
}

// phong evaluates one virtual point light's diffuse+specular
// contribution at point, after confirming the light is not blocked by a
// hard shadow ray.
func (s *shader) phong(point, normal, viewDir lin.Vec3, mat scene.Material, light vpl, px, py int) lin.Vec3 {
	toLight := light.Position.Sub(point)
	dist := toLight.Len()
	if lin.AeqZ(dist) {
		return lin.V3(0, 0, 0)
	}
	lightDir := toLight.Scale(1 / dist)

	nDotL := normal.Dot(lightDir)
	if nDotL <= 0 {
		return lin.V3(0, 0, 0) // back-face guard: light is behind the surface.
	}

	shadowOrigin := point.Add(lightDir.Scale(s.cfg.shadowBias))
	shadowRay := geom.NewRay(shadowOrigin, lightDir)
	shadowRay.T = dist - geom.Epsilon
	var shadowHit geom.HitInfo
	blocked := s.tree.Intersect(&shadowRay, &shadowHit)
	s.trace.TraceRay(px, py, shadowOrigin, lightDir, "shadow", blocked)
	if blocked {
		return lin.V3(0, 0, 0)
	}

	diffuse := mat.Kd.Mul(light.Color).Scale(nDotL)

	reflectDir := reflect(lightDir.Neg(), normal)
	specAngle := -reflectDir.Dot(viewDir)
	specular := lin.V3(0, 0, 0)
	if specAngle > 0 && mat.Shininess > 0 {
		specular = mat.Ks.Mul(light.Color).Scale(lin.Pow(specAngle, mat.Shininess))
	}

	return diffuse.Add(specular)
}

// faceForward flips normal to the side facing the incoming ray, so a
// triangle hit on its back face still shades as a lit surface instead
// of going dark, matching a two-sided shading model.
func faceForward(normal, rayDir lin.Vec3) lin.Vec3 {
	if normal.Dot(rayDir) > 0 {
		return normal.Neg()
	}
	return normal
}

// reflect mirrors incident about normal (normal assumed unit length).
func reflect(incident, normal lin.Vec3) lin.Vec3 {
	return incident.Sub(normal.Scale(2 * incident.Dot(normal))).Unit()
}

// backgroundColor is the color returned for a ray that misses every
// primitive: plain black, matching a pixel with nothing visible in it.
func backgroundColor(dir lin.Vec3) lin.Vec3 {
	return lin.V3(0, 0, 0)
}
