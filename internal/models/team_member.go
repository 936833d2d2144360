package models

// TeamMember is a member shown on the dashboard. Names are not unique;
// identity lives in ID only.
type TeamMember struct {
	ID     string `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Color  string `json:"color"`
}
