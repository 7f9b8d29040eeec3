package bms

import "golang.org/x/exp/slices"

// AutoKeysoundChannel is the background track, objects on it never replace
// each other.
const AutoKeysoundChannel = "01"

// Object is a single timed event in a chart.
type Object struct {
	Channel    string  // Raw two character channel
	Measure    int     // Measure number, starting at 0
	Fraction   float64 // Position inside the measure, in [0, 1)
	Value      string  // Raw two character value
	LineNumber int     // Source line, for diagnostics
}

// Position is the measure and fraction combined, used for ordering.
func (o Object) Position() float64 {
	return float64(o.Measure) + o.Fraction
}

type Objects struct {
	objects []Object
}

func NewObjects() *Objects {
	return &Objects{}
}

// Add appends an object. An object already at the same channel, measure
// and fraction is replaced in place, except on the auto keysound channel.
func (c *Objects) Add(object Object) {
	if object.Channel != AutoKeysoundChannel {
		for i, test := range c.objects {
			if test.Channel == object.Channel &&
				test.Measure == object.Measure &&
				test.Fraction == object.Fraction {
				c.objects[i] = object
				return
			}
		}
	}
	c.objects = append(c.objects, object)
}

func (c *Objects) Len() int {
	return len(c.objects)
}

// All returns a copy of every object in insertion order.
func (c *Objects) All() []Object {
	return append([]Object{}, c.objects...)
}

// Sorted returns a copy ordered by position, ties keep insertion order.
func (c *Objects) Sorted() []Object {
	list := c.All()
	slices.SortStableFunc(list, func(a, b Object) bool {
		return a.Position() < b.Position()
	})
	return list
}
