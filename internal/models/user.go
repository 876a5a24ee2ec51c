package models

// Role distinguishes regular shoppers from admin-console users.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account in the store. Username uniqueness is
// case-insensitive and enforced at registration time only. The password is
// stored verbatim so the persisted `users` shape round-trips unchanged.
type User struct {
	Username  string `json:"username" validate:"required,username"`
	Password  string `json:"password" validate:"required,strongpwd"`
	FullName  string `json:"fullName,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,storeemail"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,localphone"`
	AvatarURI string `json:"avatarUri,omitempty"`
	Role      Role   `json:"role,omitempty"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged"; an empty password never replaces the stored one.
type ProfileUpdate struct {
	Password  *string `json:"password,omitempty"`
	FullName  *string `json:"fullName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURI *string `json:"avatarUri,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}
