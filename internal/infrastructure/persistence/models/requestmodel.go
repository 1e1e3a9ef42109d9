package models

type SupportRequestModel struct {
	ID            uint   `gorm:"primaryKey"`
	ClientID      string `gorm:"size:64;not null;index"`
	RequestType   string `gorm:"size:50;not null;index"`
	Description   string `gorm:"type:text;not null"`
	Status        string `gorm:"size:20;not null;index"`
	InternalNotes string `gorm:"type:text"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SupportRequestModel) TableName() string {
	return "support_requests"
}

type MessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	RequestID  uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	SenderType string `gorm:"size:10;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "messages"
}

type RequestImageModel struct {
	ID         uint   `gorm:"primaryKey"`
	RequestID  uint   `gorm:"not null;index"`
	ImageURL   string `gorm:"size:1024;not null"`
	Filename   string `gorm:"size:255;not null"`
	Size       int64  `gorm:"not null"`
	UploadedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RequestImageModel) TableName() string {
	return "request_images"
}
