package categories

import "strings"

// Category is one of the labels the landing page groups tools under.
type Category struct {
	Name        string
	Description string
}

var known = []Category{
	{
		Name:        "Utilities",
		Description: "General-purpose helpers with no better home.",
	},
	{
		Name:        "Text",
		Description: "Transform, inspect, or clean up text.",
	},
	{
		Name:        "Converters",
		Description: "Turn one format into another.",
	},
	{
		Name:        "Games",
		Description: "Small diversions.",
	},
}

func Known() []Category {
	out := make([]Category, len(known))
	copy(out, known)
	return out
}

func Names() []string {
	names := make([]string, 0, len(known))
	for _, category := range known {
		names = append(names, category.Name)
	}
	return names
}

func Summary() string {
	return strings.Join(Names(), ", ")
}
