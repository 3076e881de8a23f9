package geometry

import (
	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
)

// HittableList aggregates hittables into a single composite. Intersection is
// a linear scan; insertion order does not affect which hit is returned.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list containing the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest intersection along the ray. The upper bound of the
// search interval shrinks to each accepted hit's t, so later objects are only
// accepted when strictly closer.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
