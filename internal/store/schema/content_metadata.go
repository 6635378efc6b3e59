package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ContentMetadata represents the content_metadata table - optional descriptive
// attributes of the anchored content, recorded when the raw bytes were
// submitted (content type is sniffed server-side, the rest is client-supplied).
type ContentMetadata struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CapsuleID references the capsule this metadata describes, at most one row per capsule
	CapsuleID int64 `gorm:"column:capsule_id;not null;uniqueIndex"`
	// ContentType is the detected MIME type of the content
	ContentType *string `gorm:"column:content_type;type:text"`
	// FileSize is the content size in bytes
	FileSize *int64 `gorm:"column:file_size;type:bigint"`
	// Dimensions is a "WxH" string for images and videos
	Dimensions *string `gorm:"column:dimensions;type:text"`
	// Duration is the media duration in seconds
	Duration *int64 `gorm:"column:duration;type:bigint"`
	// Tags is a JSON array of user-supplied tags
	Tags datatypes.JSON `gorm:"column:tags;type:jsonb"`
	// CustomFields is a JSON object of additional client-supplied metadata
	CustomFields datatypes.JSON `gorm:"column:custom_fields;type:jsonb"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Capsule Capsule `gorm:"foreignKey:CapsuleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ContentMetadata model
func (ContentMetadata) TableName() string {
	return "content_metadata"
}
