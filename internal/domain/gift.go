package domain

import "fmt"

type GiftStatus string

const (
	GiftStatusIdea       GiftStatus = "idee"
	GiftStatusBought     GiftStatus = "achete"
	GiftStatusOrdered    GiftStatus = "commande"
	GiftStatusInDelivery GiftStatus = "en_cours_livraison"
	GiftStatusDelivered  GiftStatus = "livre"
	GiftStatusCollected  GiftStatus = "recupere"
	GiftStatusWrapped    GiftStatus = "emballe"
	GiftStatusGiven      GiftStatus = "offert"
)

var giftStatusLabels = map[GiftStatus]string{
	GiftStatusIdea:       "Idée",
	GiftStatusBought:     "Acheté",
	GiftStatusOrdered:    "Commandé",
	GiftStatusInDelivery: "En livraison",
	GiftStatusDelivered:  "Livré",
	GiftStatusCollected:  "Récupéré",
	GiftStatusWrapped:    "Emballé",
	GiftStatusGiven:      "Offert",
}

// GiftStatuses lists statuses in workflow order.
func GiftStatuses() []GiftStatus {
	return []GiftStatus{
		GiftStatusIdea,
		GiftStatusBought,
		GiftStatusOrdered,
		GiftStatusInDelivery,
		GiftStatusDelivered,
		GiftStatusCollected,
		GiftStatusWrapped,
		GiftStatusGiven,
	}
}

func (s GiftStatus) Valid() bool {
	_, ok := giftStatusLabels[s]
	return ok
}

func (s GiftStatus) Label() string {
	if label, ok := giftStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func ParseGiftStatus(raw string) (GiftStatus, error) {
	status := GiftStatus(raw)
	if !status.Valid() {
		return "", fmt.Errorf("unsupported gift status %q", raw)
	}
	return status, nil
}

type Gift struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	URL          *string    `json:"url"`
	Price        *string    `json:"price"`
	Status       GiftStatus `json:"status"`
	Quantity     int        `json:"quantity"`
	RecipientIDs []string   `json:"recipient_ids"`
}

func (g Gift) Identifier() string { return g.ID }

type GiftCreate struct {
	Name         string     `json:"name"`
	URL          *string    `json:"url,omitempty"`
	Price        *float64   `json:"price,omitempty"`
	Status       GiftStatus `json:"status,omitempty"`
	Quantity     int        `json:"quantity,omitempty"`
	RecipientIDs []string   `json:"recipient_ids,omitempty"`
}

// GiftUpdate carries PATCH semantics: nil or absent fields are left
// unchanged. URL and Price can also be cleared with Null.
type GiftUpdate struct {
	Name         *string           `json:"name,omitempty"`
	URL          Nullable[string]  `json:"url,omitzero"`
	Price        Nullable[float64] `json:"price,omitzero"`
	Status       *GiftStatus       `json:"status,omitempty"`
	Quantity     *int              `json:"quantity,omitempty"`
	RecipientIDs *[]string         `json:"recipient_ids,omitempty"`
}
