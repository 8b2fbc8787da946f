package domain

// TakeDamage наносит урон (но не ниже нуля). Возвращает true, если объект погиб.
func (h *HealthComponent) TakeDamage(amount int) bool {
	if h.Current <= 0 {
		return false
	}
	if amount < 0 || h.Invulnerable {
		amount = 0
	}

	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

func (h *HealthComponent) IsDead() bool {
	return h.Current <= 0
}

// PowerAgainst - сила атаки против цели данного типа
func (a *AttackComponent) PowerAgainst(target ObjectType) int {
	if p, ok := a.PerType[target]; ok {
		return p
	}
	return a.Default
}
