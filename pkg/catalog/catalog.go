// Package catalog is the single source of truth for the courses on offer.
// The /courses endpoint, the client-side form validation and the success
// panel all read from this table instead of re-declaring the literals.
package catalog

import "strconv"

type Course struct {
	Name  string `json:"name"`
	Price int    `json:"price"` // KES
}

var Courses = []Course{
	{Name: "AI Masterclass (5 sessions)", Price: 10000},
	{Name: "AI for Business & Branding (4 sessions)", Price: 10000},
	{Name: "Advanced AI for Your Profession (5 sessions)", Price: 15000},
	{Name: "Automation and Agents Class (5 sessions)", Price: 10000},
	{Name: "Introduction to Prompt Engineering (3 Sessions)", Price: 8000},
	{Name: "Generative AI for Creatives (4 Sessions)", Price: 12000},
	{Name: "AI Ethics and Responsible Innovation (3 Sessions)", Price: 10000},
	{Name: "Web development using Ai < 1 month>", Price: 30000},
}

// Find returns the catalog entry with the exact given name.
func Find(name string) (Course, bool) {
	for _, c := range Courses {
		if c.Name == name {
			return c, true
		}
	}
	return Course{}, false
}

// Levels a student picks their current experience from.
var Levels = []string{"Beginner", "Intermediate", "Advanced"}

func ValidLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

// FormatKES renders a price the way the site displays it, e.g. "KES 10,000".
func FormatKES(amount int) string {
	s := strconv.Itoa(amount)
	if amount < 0 {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if amount < 0 {
		s = "-" + s
	}
	return "KES " + s
}
