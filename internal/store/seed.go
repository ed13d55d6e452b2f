package store

import (
	"errors"

	"mtg-card-vault/internal/models"
)

// Seed 预置一个演示账号和几张卡牌，方便本地开发和演示。
// 账号已存在时不做任何事。
func Seed(users UserStore, cards CardStore) error {
	_, err := users.Register("wolfe_hoover", "password", "wolfehoover@example.com")
	if err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil
		}
		return err
	}

	cards.Append("wolfe_hoover", []models.Card{
		{Name: "Caesar, Legion's Emperor", Type: "Legendary Creature", Rarity: "mythic", SetName: "Fallout", Image: "https://via.placeholder.com/100x150"},
		{Name: "Aradesh, the Founder", Type: "Legendary Creature", Rarity: "mythic", SetName: "Fallout", Image: "https://via.placeholder.com/100x150"},
		{Name: "Frodo Baggins", Type: "Legendary Creature", Rarity: "rare", SetName: "Lord of the Rings", Image: "https://via.placeholder.com/100x150"},
		{Name: "Samwise the Stouthearted", Type: "Legendary Creature", Rarity: "rare", SetName: "Lord of the Rings", Image: "https://via.placeholder.com/100x150"},
	})
	return nil
}
