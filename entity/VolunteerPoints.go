package entity

type VolunteerPoints struct {
	UserID string `gorm:"primaryKey" json:"userId"`
	Points int64  `json:"points"`
}
