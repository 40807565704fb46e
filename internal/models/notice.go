package models

type NoticeType string

const (
	NoticeTypeOffer       NoticeType = "offer"
	NoticeTypeNotice      NoticeType = "notice"
	NoticeTypePriceChange NoticeType = "price change"
)

func IsValidNoticeType(t NoticeType) bool {
	switch t {
	case NoticeTypeOffer, NoticeTypeNotice, NoticeTypePriceChange:
		return true
	}
	return false
}

type Notice struct {
	BaseModel
	Message    string     `gorm:"not null"`
	NoticeType NoticeType `gorm:"type:varchar(20);not null;default:'notice'"`
}
