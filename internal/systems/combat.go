package systems

import (
	"fmt"
	"tactics-core/internal/domain"
	"tactics-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackOutcome - результат атаки. Состояние не меняется, только вычисляется.
type AttackOutcome struct {
	Damage    int
	Destroyed bool // цель погибла и убирается с поля
	Captured  bool // цель погибла и переходит к атакующему

	// Before/After - цель до и после атаки (копии)
	Before *domain.Object
	After  *domain.Object
}

// ResolveAttack проверяет допустимость атаки и считает ее исход
func ResolveAttack(attacker, defender *domain.Object) (AttackOutcome, error) {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker_id": attacker.ID,
		"target_id":   defender.ID,
	})

	// --- Проверка граничных условий ---

	if attacker.ID == defender.ID {
		return AttackOutcome{}, fmt.Errorf("%w: object cannot attack itself", domain.ErrIllegalAttack)
	}
	if !attacker.CanAttack() {
		return AttackOutcome{}, fmt.Errorf("%w: %s has no attack power", domain.ErrIllegalAttack, attacker.ID)
	}
	if !defender.CanBeAttacked() {
		return AttackOutcome{}, fmt.Errorf("%w: %s cannot be attacked", domain.ErrIllegalAttack, defender.ID)
	}
	if attacker.Owner != domain.NoPlayer && attacker.Owner == defender.Owner {
		return AttackOutcome{}, fmt.Errorf("%w: %s and %s are on the same side", domain.ErrIllegalAttack, attacker.ID, defender.ID)
	}

	reach := attacker.Attack.Range
	if reach < 1 {
		reach = 1
	}
	if attacker.MapID != defender.MapID || attacker.Pos.ChebyshevTo(defender.Pos) > reach {
		return AttackOutcome{}, fmt.Errorf("%w: %s is out of range", domain.ErrIllegalAttack, defender.ID)
	}

	// --- Расчёт урона ---

	out := AttackOutcome{
		Before: defender.Clone(),
		After:  defender.Clone(),
	}
	power := attacker.Attack.PowerAgainst(defender.Type)
	hpBefore := out.After.Health.Current
	died := out.After.Health.TakeDamage(power)
	out.Damage = hpBefore - out.After.Health.Current

	if died {
		switch out.After.Health.OnDeath {
		case domain.OnDeathCapture:
			out.Captured = true
			out.After.Owner = attacker.Owner
			out.After.Health.Current = max(1, min(out.After.Health.RestoreAt, out.After.Health.Max))
		default:
			out.Destroyed = true
		}
	}

	combatLogger.WithFields(logrus.Fields{
		"power":     power,
		"damage":    out.Damage,
		"hp_before": hpBefore,
		"destroyed": out.Destroyed,
		"captured":  out.Captured,
	}).Debug("Attack resolved")

	return out, nil
}
