package components

import "github.com/yohamta/donburi"

// Set adds c to entry with value v, or overwrites the existing value.
func Set[T any](entry *donburi.Entry, c *donburi.ComponentType[T], v T) {
	if entry.HasComponent(c) {
		c.SetValue(entry, v)
		return
	}
	donburi.Add(entry, c, &v)
}

// AddTag adds tag to entry unless it is already there.
func AddTag(entry *donburi.Entry, tag donburi.IComponentType) {
	if !entry.HasComponent(tag) {
		entry.AddComponent(tag)
	}
}
