package domain

type CardStatusType string

const (
	CardStatusActive  CardStatusType = "ACTIVE"
	CardStatusBlocked CardStatusType = "BLOCKED"
	CardStatusExpired CardStatusType = "EXPIRED"
)

// ValidCardStatus сообщает, входит ли значение в перечень известных статусов карты.
func ValidCardStatus(status CardStatusType) bool {
	switch status {
	case CardStatusActive, CardStatusBlocked, CardStatusExpired:
		return true
	default:
		return false
	}
}
