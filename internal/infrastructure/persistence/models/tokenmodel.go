package models

type ClientTokenModel struct {
	Token       string `gorm:"primaryKey;size:120"`
	ClientID    string `gorm:"uniqueIndex;size:64;not null"`
	ClientName  string `gorm:"size:200;not null"`
	ClientEmail string `gorm:"size:255"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// The token/request relationship is enforced by the use cases.
}

func (ClientTokenModel) TableName() string {
	return "client_tokens"
}
