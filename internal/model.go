package internal

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without time of day, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan accepts DATE columns (time.Time) and text columns (YYYY-MM-DD).
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(v)
	case string:
		return d.UnmarshalJSON([]byte(v))
	case []byte:
		return d.UnmarshalJSON(v)
	default:
		return fmt.Errorf("date: cannot scan %T", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(dateLayout), nil
}

type Donation struct {
	Amount float64 `json:"amount"`
	Donor  string  `json:"donor"` // "Anonymous" when the donor opted out
	Date   Date    `json:"date"`
}

type Intern struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	ReferralCode    string     `json:"referralCode"`
	TotalRaised     float64    `json:"totalRaised"`
	TotalDonations  int        `json:"totalDonations"`
	JoinDate        Date       `json:"joinDate"`
	Rank            int        `json:"rank"`
	Achievements    []string   `json:"achievements"`    // unlocked achievement names
	RecentDonations []Donation `json:"recentDonations"` // most recent first
}

// Clone returns a deep copy so callers can't alias stored slices.
func (i Intern) Clone() Intern {
	out := i
	out.Achievements = append([]string{}, i.Achievements...)
	out.RecentDonations = append([]Donation{}, i.RecentDonations...)
	return out
}

type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"` // relative to the requesting intern
}

type AuthResponse struct {
	Success bool    `json:"success"`
	User    *Intern `json:"user,omitempty"`
	Token   string  `json:"token,omitempty"`
	Message string  `json:"message,omitempty"`
}
