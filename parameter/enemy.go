package parameter

// Zombie steering
const (
	ZombieCount      = 10
	ZombieJumpChance = 0.08
	ZombieTurnDamp   = 0.99
	ZombieTurnJitter = 0.08
)
