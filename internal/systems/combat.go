package systems

import (
	"fmt"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
)

// AttackResult - итог одного удара.
type AttackResult struct {
	Damage   int
	Healed   int
	Killed   bool
	Messages []domain.Message
}

// PlayerDamageRange - разброс урона игрока при базовой атаке base.
func PlayerDamageRange(base int) (int, int) {
	return max(1, base-2), base + 3
}

// MonsterDamageRange - разброс урона монстра с силой power.
func MonsterDamageRange(power int) (int, int) {
	return max(1, power-2), power + 2
}

// PlayerAttack - удар игрока по монстру. Урон случаен в PlayerDamageRange от
// эффективной атаки; по монстру, который еще ни разу не шагнул к игроку и не бил его, урон
// умножается на SurpriseMultiplier. Вампиризм лечит на damage/3 до нанесения урона.
func PlayerAttack(rng utils.Source, player *domain.Player, target *domain.Monster) AttackResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"target_id":   target.ID,
		"target_name": target.Name,
	})

	var res AttackResult
	if !target.IsAlive() {
		res.Messages = append(res.Messages, domain.Combat(fmt.Sprintf("The %s is already dead!", target.Name)))
		return res
	}

	lo, hi := PlayerDamageRange(player.EffectiveAttack())
	damage := utils.RandRange(rng, lo, hi)

	surprised := !target.Alerted && player.Status.SurpriseMultiplier > 1
	if surprised {
		damage = int(float64(damage) * player.Status.SurpriseMultiplier)
	}

	if player.Status.Vampiric {
		res.Healed = player.Stats.Heal(damage / 3)
		res.Messages = append(res.Messages, domain.Combat(fmt.Sprintf("Vampiric touch heals you for %d HP!", res.Healed)))
	}

	hpBefore := target.Stats.HP
	res.Damage = damage
	res.Killed = target.Stats.TakeDamage(damage)

	res.Messages = append(res.Messages, domain.Combat(fmt.Sprintf("You attack the %s for %d damage!", target.Name, damage)))
	res.Messages = append(res.Messages, healthReport(target))

	combatLogger.WithFields(logrus.Fields{
		"attacker":     "player",
		"final_damage": damage,
		"surprised":    surprised,
		"healed":       res.Healed,
		"hp_before":    hpBefore,
		"hp_after":     target.Stats.HP,
		"target_died":  res.Killed,
	}).Info("Attack resolved.")

	return res
}

// CriticalStrike - отдельный шаг после обычного удара: с вероятностью CritChance
// добавляет EffectiveAttack/2 урона без разброса. При CritChance > 0 бросок
// делается всегда, урон проходит только по живой цели.
func CriticalStrike(rng utils.Source, player *domain.Player, target *domain.Monster) AttackResult {
	var res AttackResult
	if !utils.Chance(rng, player.Status.CritChance) || !target.IsAlive() {
		return res
	}

	res.Damage = player.EffectiveAttack() / 2
	res.Killed = target.Stats.TakeDamage(res.Damage)
	res.Messages = append(res.Messages, domain.Combat(fmt.Sprintf("CRITICAL HIT! +%d damage!", res.Damage)))
	if res.Killed {
		res.Messages = append(res.Messages, domain.Combat(fmt.Sprintf("The %s dies!", target.Name)))
	}

	logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"target_id":   target.ID,
		"extra":       res.Damage,
		"target_died": res.Killed,
	}).Info("Critical hit.")

	return res
}

// MonsterAttack - удар монстра по игроку, без модификаторов.
func MonsterAttack(rng utils.Source, monster *domain.Monster, player *domain.Player) AttackResult {
	var res AttackResult
	if !monster.IsAlive() {
		return res
	}

	monster.Alerted = true
	lo, hi := MonsterDamageRange(monster.Stats.Attack)
	res.Damage = utils.RandRange(rng, lo, hi)
	res.Killed = player.Stats.TakeDamage(res.Damage)

	res.Messages = append(res.Messages, domain.Combat(fmt.Sprintf("The %s attacks you for %d damage!", monster.Name, res.Damage)))
	if player.IsAlive() {
		res.Messages = append(res.Messages, domain.Combat(fmt.Sprintf("You have %d/%d HP remaining.", player.Stats.HP, player.Stats.MaxHP)))
	} else {
		res.Messages = append(res.Messages, domain.Combat("You have died! Game Over!"))
	}

	logger.Log.WithFields(logrus.Fields{
		"component":    "combat_system",
		"attacker_id":  monster.ID,
		"final_damage": res.Damage,
		"player_hp":    player.Stats.HP,
	}).Info("Monster attack resolved.")

	return res
}

func healthReport(m *domain.Monster) domain.Message {
	if !m.IsAlive() {
		return domain.Combat(fmt.Sprintf("The %s dies!", m.Name))
	}
	return domain.Combat(fmt.Sprintf("The %s has %d/%d HP remaining.", m.Name, m.Stats.HP, m.Stats.MaxHP))
}
