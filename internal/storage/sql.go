package storage

import (
	"github.com/Ashish-Code-01/internshp-project/internal"
)

// rows is the subset of *sql.Rows and pgx.Rows the scanners need.
type rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanInterns(r rows) ([]internal.Intern, error) {
	interns := []internal.Intern{}
	for r.Next() {
		var in internal.Intern
		if err := r.Scan(&in.ID, &in.Name, &in.Email, &in.ReferralCode, &in.TotalRaised, &in.TotalDonations, &in.JoinDate, &in.Rank); err != nil {
			return nil, err
		}
		in.Achievements = []string{}
		in.RecentDonations = []internal.Donation{}
		interns = append(interns, in)
	}
	return interns, r.Err()
}

// attachAchievements expects rows of (intern_id, achievement_name) in
// display order.
func attachAchievements(interns []internal.Intern, r rows) error {
	index := indexByID(interns)
	for r.Next() {
		var internID int
		var name string
		if err := r.Scan(&internID, &name); err != nil {
			return err
		}
		if i, ok := index[internID]; ok {
			interns[i].Achievements = append(interns[i].Achievements, name)
		}
	}
	return r.Err()
}

// attachDonations expects rows of (intern_id, amount, donor, donated_on),
// most recent first.
func attachDonations(interns []internal.Intern, r rows) error {
	index := indexByID(interns)
	for r.Next() {
		var internID int
		var d internal.Donation
		if err := r.Scan(&internID, &d.Amount, &d.Donor, &d.Date); err != nil {
			return err
		}
		if i, ok := index[internID]; ok {
			interns[i].RecentDonations = append(interns[i].RecentDonations, d)
		}
	}
	return r.Err()
}

func scanAchievements(r rows) ([]internal.Achievement, error) {
	out := []internal.Achievement{}
	for r.Next() {
		var a internal.Achievement
		if err := r.Scan(&a.ID, &a.Name, &a.Description, &a.Icon); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, r.Err()
}

func indexByID(interns []internal.Intern) map[int]int {
	index := make(map[int]int, len(interns))
	for i, in := range interns {
		index[in.ID] = i
	}
	return index
}
