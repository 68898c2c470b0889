package models

import "gorm.io/gorm"

const (
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
	PlatformTiktok    = "tiktok"
)

// Platforms lists the recognized social media platforms in submission order.
var Platforms = []string{PlatformInstagram, PlatformTwitter, PlatformTiktok}

// SocialMediaHandle stores one handle per (member, platform). Zero or
// more per member; unchecked or blank entries are never persisted.
type SocialMediaHandle struct {
	gorm.Model
	MemberID uint   `gorm:"not null;uniqueIndex:idx_member_platform" json:"memberId"`
	Platform string `gorm:"size:20;not null;uniqueIndex:idx_member_platform" json:"platform"`
	Handle   string `gorm:"size:100;not null" json:"handle"`
}

func (SocialMediaHandle) TableName() string {
	return "social_media_handles"
}
