package bms

import "strings"

// Headers holds the header sentences of a chart, such as #TITLE or #BPM.
// Field names are case-insensitive. A field set more than once keeps
// every value in the order it was set, the latest one wins for Get.
type Headers struct {
	data  map[string]string
	all   map[string][]string
	order []string
}

func NewHeaders() *Headers {
	return &Headers{
		data: map[string]string{},
		all:  map[string][]string{},
	}
}

// Get returns the latest value of a field.
func (h *Headers) Get(name string) (string, bool) {
	v, ok := h.data[strings.ToLower(name)]
	return v, ok
}

// GetAll returns every value ever set for a field, nil if it was never set.
func (h *Headers) GetAll(name string) []string {
	values, ok := h.all[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return append([]string{}, values...)
}

func (h *Headers) Set(name, value string) {
	key := strings.ToLower(name)
	if _, ok := h.data[key]; !ok {
		h.order = append(h.order, key)
	}
	h.data[key] = value
	h.all[key] = append(h.all[key], value)
}

// Each calls fn with the latest value of every field, in the order the
// fields first appeared.
func (h *Headers) Each(fn func(name, value string)) {
	for _, key := range h.order {
		fn(key, h.data[key])
	}
}

func (h *Headers) Len() int {
	return len(h.order)
}
