package models

import (
	"time"
)

// AvatarType represents how a user's avatar was sourced
type AvatarType string

const (
	AvatarTypeDefault   AvatarType = "default"
	AvatarTypeUploaded  AvatarType = "uploaded"
	AvatarTypeGenerated AvatarType = "generated"
)

// User represents a platform account
type User struct {
	ID               int64      `db:"id_user"`
	Username         string     `db:"username"`
	Email            string     `db:"email"`
	Password         string     `db:"password"` // bcrypt hash
	Provider         string     `db:"provider"`
	TwoFactorEnabled bool       `db:"two_factor_enabled"`
	AvatarFilename   *string    `db:"avatar_filename"`
	AvatarType       AvatarType `db:"avatar_type"`
	CreatedAt        time.Time  `db:"created_at"`
}
