package models

// Card is a single item in a user's collection. ID is assigned by the
// server on append and is unique within the owning collection; it is
// what clients use to address a card for deletion.
type Card struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Rarity  string `json:"rarity"`
	SetName string `json:"setName"`
	Image   string `json:"image"`
}
