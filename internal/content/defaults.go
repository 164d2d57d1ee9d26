package content

// DefaultCompany is served when no company record has been stored.
func DefaultCompany() Company {
	return Company{
		About: About{
			Name:        "CAID - Content Authenticity Initiative for Detection",
			Mission:     "A deep-tech initiative solving the $5.7T synthetic media problem by 2030.",
			Description: "Our mission: Distinguish real from synthetic media with precision.",
			Urgency:     "The problem is critical. The market is massive. The action is now.",
		},
		Contact: Contact{
			Email: "team@caid.io",
			Demo:  "Schedule demo video call",
			Pitch: "Request pitch deck",
		},
		System: SystemInfo{
			Version:        "1.0",
			Status:         "secure",
			WelcomeMessage: "Welcome to the frontline against synthetic media.",
		},
	}
}

// DefaultMilestones seeds an empty roadmap.
func DefaultMilestones() []Milestone {
	return []Milestone{
		{
			Target:   "SEP 2025",
			Product:  "Blockchain-based Browser Plugin (Beta)",
			Function: "Enables a community of users to help identify and flag potential AI-generated media, creating a distributed ledger of trust.",
			Status:   "In Development",
			Priority: 1,
		},
		{
			Target:   "Q1/Q2 2026",
			Product:  "Automated Detection Engine v1.0",
			Function: "An advanced algorithm for automatic synthetic media detection, powered by extensive R&D.",
			Status:   "R&D Phase",
			Priority: 2,
		},
	}
}

// DefaultTeam seeds an empty team.
func DefaultTeam() []Member {
	return []Member{
		{
			Name:         "Sriram Saiteja",
			Role:         "CEO, Founder",
			Focus:        "Vision, Strategy, Business Development",
			IsFounder:    true,
			DisplayOrder: 1,
		},
		{
			Name:         "Sunil Kumar Nallani",
			Role:         "CTO, Co-founder",
			Focus:        "Technology, R&D, Product Development",
			IsFounder:    true,
			DisplayOrder: 2,
		},
	}
}

func DefaultFunding() Funding {
	return Funding{
		Stage:  "Seed funding round",
		Target: "Building R&D team",
		Focus:  "Accelerating product development",
		Market: "$5.7T synthetic media detection by 2030",
		Seeking: []string{
			"Seed-level accelerators",
			"Technology investors",
			"Strategic partners",
		},
	}
}

// DefaultSnapshot bundles the built-in content as if it had been fetched.
func DefaultSnapshot() Snapshot {
	c := DefaultCompany()
	return Snapshot{
		Company: &c,
		Roadmap: &Roadmap{Milestones: DefaultMilestones()},
		Team:    &Team{Founders: DefaultTeam()},
	}
}
