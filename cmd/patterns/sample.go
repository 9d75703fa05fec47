package main

import "github.com/vanderheijden86/ariapatterns/pkg/model"

// sampleItems is shown when no items file is configured.
func sampleItems() []*model.Node {
	n := func(id, label string, kids ...*model.Node) *model.Node {
		return &model.Node{NodeID: id, Label: label, Kids: kids}
	}
	disabled := n("kohlrabi", "Kohlrabi")
	disabled.IsDisabled = true
	return []*model.Node{
		n("fruits", "Fruits",
			n("apple", "Apple"),
			n("apricot", "Apricot"),
			n("banana", "Banana"),
			n("berries", "Berries",
				n("blackberry", "Blackberry"),
				n("blueberry", "Blueberry"),
				n("strawberry", "Strawberry"),
			),
			n("cherry", "Cherry"),
		),
		n("vegetables", "Vegetables",
			n("broccoli", "Broccoli"),
			n("carrot", "Carrot"),
			disabled,
			n("leafy", "Leafy greens",
				n("kale", "Kale"),
				n("lettuce", "Lettuce"),
				n("spinach", "Spinach"),
			),
		),
		n("grains", "Grains",
			n("barley", "Barley"),
			n("oats", "Oats"),
			n("rice", "Rice"),
		),
		n("dairy", "Dairy"),
	}
}
