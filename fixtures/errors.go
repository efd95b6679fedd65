package fixtures

import "errors"

// ErrTooFewVertices is returned when a fixture's size parameter cannot
// produce the shape it names (e.g. a cycle of fewer than 3 vertices).
var ErrTooFewVertices = errors.New("fixtures: too few vertices for this shape")
