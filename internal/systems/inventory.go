package systems

import (
	"errors"
	"fmt"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoItem           = errors.New("item not in inventory")
	ErrPotionsForbidden = errors.New("potions are forbidden")
	ErrNotUsable        = errors.New("item cannot be used")
)

const (
	potionHeal   = 25
	scrollAttack = 2
	weaponAttack = 5
)

// --- PICKUP ---

// TryPickup кладет собранный предмет в инвентарь игрока.
func TryPickup(player *domain.Player, item *domain.Item) string {
	player.Inventory.Add(item)

	logger.Log.WithFields(logrus.Fields{
		"component": "item_system",
		"item_id":   item.ID,
		"kind":      item.Kind.String(),
		"value":     item.Value,
	}).Debug("Item picked up")

	if item.Kind == domain.Gold {
		return fmt.Sprintf("Picked up %d gold!", item.Value)
	}
	return fmt.Sprintf("Picked up %s!", item.Kind)
}

// --- USE ---

// TryUse расходует одну единицу предмета и применяет эффект.
// Ошибки означают, что ничего не произошло.
func TryUse(rng utils.Source, player *domain.Player, kind domain.ItemKind) (string, error) {
	if kind == domain.Gold {
		return "", ErrNotUsable
	}
	if kind == domain.HealthPotion && !player.Status.CanUsePotions {
		return "", ErrPotionsForbidden
	}
	if !player.Inventory.Take(kind) {
		return "", ErrNoItem
	}

	msg := applyEffect(rng, player, kind)

	logger.Log.WithFields(logrus.Fields{
		"component": "item_system",
		"kind":      kind.String(),
		"hp":        player.Stats.HP,
		"attack":    player.Stats.Attack,
	}).Info("Item used")

	return msg, nil
}

func applyEffect(rng utils.Source, player *domain.Player, kind domain.ItemKind) string {
	switch kind {
	case domain.HealthPotion:
		healed := player.Stats.Heal(min(potionHeal, player.Stats.MaxHP-player.Stats.HP))
		return fmt.Sprintf("You drink the health potion and recover %d HP!", healed)
	case domain.MagicScroll:
		switch rng.Intn(3) {
		case 0:
			healed := player.Stats.Heal(utils.RandRange(rng, 10, 30))
			return fmt.Sprintf("The scroll glows and heals you for %d HP!", healed)
		case 1:
			player.Stats.Attack += scrollAttack
			return "The scroll enhances your combat abilities! Attack +2!"
		default:
			return "The scroll crumbles to dust. Nothing happens."
		}
	case domain.Weapon:
		player.Stats.Attack += weaponAttack
		return "You equip the sword! Attack power increased by 5!"
	}
	return fmt.Sprintf("You can't use the %s.", kind)
}
