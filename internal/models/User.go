package models

import "gorm.io/gorm"

// User roles. Role is a fixed business classification used only for
// authorization; it never changes after creation.
const (
	RoleManager       = "manager"
	RoleDispatcher    = "dispatcher"
	RoleSafetyOfficer = "safety_officer"
	RoleAnalyst       = "analyst"
	RoleDriver        = "driver"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Role     string `json:"role" gorm:"default:dispatcher"`
	Active   bool   `json:"active" gorm:"default:true"`

	// Set when the user carries the driver role and a Driver profile
	// was provisioned at registration.
	Driver *Driver `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"driver,omitempty"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleManager, RoleDispatcher, RoleSafetyOfficer, RoleAnalyst, RoleDriver:
		return true
	}
	return false
}
