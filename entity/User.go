package entity

import "time"

type Role string

const (
	RoleStudent       Role = "student"
	RoleFoodVendor    Role = "foodVendor"
	RoleLaundryVendor Role = "laundryVendor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFoodVendor, RoleLaundryVendor:
		return true
	}
	return false
}

type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Role     Role   `gorm:"not null" json:"role"`
	Password string `json:"-"` // bcrypt hash; never verified in the mocked path

	// student profile
	FullName         string `json:"fullName,omitempty"`
	EnrollmentNumber string `json:"enrollmentNumber,omitempty"`
	Course           string `json:"course,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	Email            string `json:"email,omitempty"` // institutional email

	// vendor profile
	VendorName string `json:"vendorName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName is what order records carry as the customer name.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.EnrollmentNumber != "" {
		return u.EnrollmentNumber
	}
	return u.VendorName
}
