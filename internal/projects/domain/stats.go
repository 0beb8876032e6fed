package domain

// RecentLimit is how many projects Stats reports as recent.
const RecentLimit = 5

type Stats struct {
	TotalProjects  int            `json:"totalProjects"`
	Categories     map[string]int `json:"categories"`
	RecentProjects []Project      `json:"recentProjects"`
}

// ComputeStats counts projects per category and lists the most recently
// created ones, newest first. projects must be in ascending id order.
func ComputeStats(projects []Project) Stats {
	stats := Stats{
		TotalProjects:  len(projects),
		Categories:     make(map[string]int),
		RecentProjects: make([]Project, 0, RecentLimit),
	}

	for _, p := range projects {
		category := p.Category
		if category == "" {
			category = DefaultCategory
		}
		stats.Categories[category]++
	}

	for i := len(projects) - 1; i >= 0 && len(stats.RecentProjects) < RecentLimit; i-- {
		stats.RecentProjects = append(stats.RecentProjects, projects[i])
	}

	return stats
}
