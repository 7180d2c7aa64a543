package models

// DefaultSiteName is used for page titles and the nav brand.
const DefaultSiteName = "Kapil Raj KC"

// DefaultTagline appears under the brand in the footer.
const DefaultTagline = "Full Stack Developer & Creative Problem Solver"

// DefaultAbout is rendered when the backend is unreachable or returns no
// about document, so the public page never shows a broken primary section.
func DefaultAbout() About {
	order := func(n int) *int { return &n }
	return About{
		Profile: Profile{
			Name:  "Kapil Raj KC",
			Bio:   []string{"A passionate Full Stack Developer from Kathmandu, Nepal, creating beautiful, functional web applications."},
			Badge: "Full Stack Dev",
			Status: ProfileStatus{
				Text:        "Available for work",
				IsAvailable: true,
			},
		},
		Stats: AboutStats{
			Projects:     StatValue{Value: 50, Label: "Projects"},
			Experience:   StatValue{Value: 3, Label: "Years"},
			Satisfaction: StatValue{Value: 100, Label: "Satisfaction"},
		},
		Expertise: []ExpertiseItem{
			{Title: "Full Stack Development", Description: "End-to-end web applications with modern stacks.", Icon: "Code", Order: order(1)},
			{Title: "API Design", Description: "Clean, well-documented REST services.", Icon: "Layers", Order: order(2)},
			{Title: "Performance", Description: "Fast, responsive experiences on every device.", Icon: "Zap", Order: order(3)},
		},
		Technologies: []TechnologyItem{
			{Name: "JavaScript", Active: true, Order: order(1)},
			{Name: "React", Active: true, Order: order(2)},
			{Name: "Node.js", Active: true, Order: order(3)},
			{Name: "MongoDB", Active: true, Order: order(4)},
			{Name: "Express", Active: true, Order: order(5)},
		},
	}
}

// DefaultContactInfo is shown when the backend has no contact details.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		Email:    "kapilmern.dev@gmail.com",
		Phone:    "+977 9704167805",
		Location: "Kathmandu, Nepal",
	}
}

// DefaultProjectStats back the hero counters when the stats fetch fails.
func DefaultProjectStats() ProjectStats {
	return ProjectStats{
		CompletedProjects: 15,
		OngoingProjects:   3,
		HappyClients:      20,
		YearsExperience:   3,
	}
}
