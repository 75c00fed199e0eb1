package graphnode

// derivedCache holds a value computed from upstream state.
//
// It is either clean or dirty. Upstream mutations call invalidate; readers
// call get, which rebuilds first when dirty. The dirty flag is cleared
// before the build runs, so a build that reads through the cache sees the
// previous value instead of recursing.
type derivedCache[T any] struct {
	dirty    bool
	building bool
	value    T
	build    func() T
}

func newDerivedCache[T any](build func() T) *derivedCache[T] {
	return &derivedCache[T]{dirty: true, build: build}
}

func (c *derivedCache[T]) invalidate() {
	c.dirty = true
}

func (c *derivedCache[T]) isDirty() bool {
	return c.dirty
}

// ensureFresh rebuilds the value if dirty. It is a no-op when clean or
// while a rebuild is already running.
func (c *derivedCache[T]) ensureFresh() {
	if !c.dirty || c.building {
		return
	}
	c.dirty = false
	c.building = true
	defer func() { c.building = false }()
	c.value = c.build()
}

func (c *derivedCache[T]) get() T {
	c.ensureFresh()
	return c.value
}
