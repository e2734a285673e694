package model

import "time"

// FounderModel mirrors the 'founders' table. PostgreSQL assigns monotonically
// increasing ids via BIGSERIAL.
type FounderModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex:idx_founders_email;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	CompanyName  string `gorm:"type:varchar(255)"`
	Industry     string `gorm:"type:varchar(100)"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FounderModel) TableName() string {
	return "founders"
}
