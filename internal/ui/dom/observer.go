package dom

// ObserverOptions mirrors IntersectionObserver init options.
type ObserverOptions struct {
	// Threshold is the visible fraction that counts as intersecting.
	Threshold  float64
	RootMargin string
}

// IntersectionEntry reports one target crossing a threshold.
type IntersectionEntry struct {
	Target         Element
	IsIntersecting bool
	Ratio          float64
}

// ObserverFunc receives batched intersection entries.
type ObserverFunc func(entries []IntersectionEntry, obs Observer)

// Observer watches elements for viewport intersection.
type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
	Disconnect()
}

// Each calls fn for every element, skipping nils.
func Each(els []Element, fn func(i int, el Element)) {
	for i, el := range els {
		if el == nil {
			continue
		}
		fn(i, el)
	}
}
