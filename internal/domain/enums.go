package domain

// CardStatus is the per-user state of a catalog card. Transitions are
// unrestricted in both directions.
type CardStatus string

const (
	CardStatusPending CardStatus = "PENDING"
	CardStatusSigned  CardStatus = "SIGNED"
)

func (s CardStatus) String() string { return string(s) }

func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusPending, CardStatusSigned:
		return true
	}
	return false
}
