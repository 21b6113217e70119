package storage

import (
	"time"

	"github.com/Ashish-Code-01/internshp-project/internal"
)

// SeedInterns returns the built-in intern roster. Stored ranks are kept as
// shipped; the service layer derives the authoritative order.
func SeedInterns() []internal.Intern {
	return []internal.Intern{
		{
			ID:             1,
			Name:           "Alex Johnson",
			Email:          "alex.johnson@example.com",
			ReferralCode:   "alex2025",
			TotalRaised:    15750.50,
			TotalDonations: 47,
			JoinDate:       internal.NewDate(2024, time.January, 15),
			Rank:           3,
			Achievements:   []string{"First Donation", "Team Player", "Rising Star"},
			RecentDonations: []internal.Donation{
				{Amount: 250, Donor: "Anonymous", Date: internal.NewDate(2025, time.January, 10)},
				{Amount: 100, Donor: "John Smith", Date: internal.NewDate(2025, time.January, 9)},
				{Amount: 500, Donor: "Tech Corp", Date: internal.NewDate(2025, time.January, 8)},
			},
		},
		{
			ID:              2,
			Name:            "Sarah Chen",
			Email:           "sarah.chen@example.com",
			ReferralCode:    "sarah2025",
			TotalRaised:     23400.25,
			TotalDonations:  62,
			JoinDate:        internal.NewDate(2024, time.January, 10),
			Rank:            1,
			Achievements:    []string{"First Donation", "Team Player", "Rising Star", "Top Performer", "Community Leader"},
			RecentDonations: []internal.Donation{},
		},
		{
			ID:              3,
			Name:            "Mike Rodriguez",
			Email:           "mike.rodriguez@example.com",
			ReferralCode:    "mike2025",
			TotalRaised:     18950.75,
			TotalDonations:  53,
			JoinDate:        internal.NewDate(2024, time.January, 20),
			Rank:            2,
			Achievements:    []string{"First Donation", "Team Player", "Rising Star", "Top Performer"},
			RecentDonations: []internal.Donation{},
		},
		{
			ID:              4,
			Name:            "Emma Wilson",
			Email:           "emma.wilson@example.com",
			ReferralCode:    "emma2025",
			TotalRaised:     12300.00,
			TotalDonations:  38,
			JoinDate:        internal.NewDate(2024, time.February, 1),
			Rank:            4,
			Achievements:    []string{"First Donation", "Team Player"},
			RecentDonations: []internal.Donation{},
		},
		{
			ID:              5,
			Name:            "David Kim",
			Email:           "david.kim@example.com",
			ReferralCode:    "david2025",
			TotalRaised:     9875.25,
			TotalDonations:  29,
			JoinDate:        internal.NewDate(2024, time.February, 15),
			Rank:            5,
			Achievements:    []string{"First Donation"},
			RecentDonations: []internal.Donation{},
		},
	}
}

// SeedAchievements returns the achievement catalog with nothing unlocked.
func SeedAchievements() []internal.Achievement {
	return []internal.Achievement{
		{ID: 1, Name: "First Donation", Description: "Raised your first donation", Icon: "🎯"},
		{ID: 2, Name: "Team Player", Description: "Collaborated with 5+ team members", Icon: "🤝"},
		{ID: 3, Name: "Rising Star", Description: "Raised over $10,000", Icon: "⭐"},
		{ID: 4, Name: "Top Performer", Description: "Ranked in top 3", Icon: "🏆"},
		{ID: 5, Name: "Community Leader", Description: "Raised over $20,000", Icon: "👑"},
		{ID: 6, Name: "Marathon Runner", Description: "100+ donations raised", Icon: "🏃"},
	}
}

func SeedDataset() Dataset {
	return Dataset{Interns: SeedInterns(), Achievements: SeedAchievements()}
}
