package models

import "time"

// Upload is the metadata record for a stored document. Filename is the
// system-generated blob key; OriginalName is display only and never used
// for storage. The bytes themselves belong to the files package.
type Upload struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"not null;uniqueIndex" json:"filename"`
	OriginalName string    `gorm:"not null" json:"originalName"`
	MemberName   string    `gorm:"not null" json:"memberName"`
	FileSize     int64     `gorm:"not null" json:"fileSize"`
	FileType     string    `gorm:"not null" json:"fileType"`
	UploadedAt   time.Time `gorm:"not null" json:"uploadedAt"`
}
