package engine

// Config хранит параметры движка.
type Config struct {
	// MaxTicks - предел для Run. 0 означает DefaultMaxTicks.
	MaxTicks int
	// IdlePass - фаза заканчивается, если команда за тик не потратила
	// ни одного очка времени (никто не может ни стрелять, ни идти).
	// По умолчанию выключено: ход держится, пока не кончатся очки.
	IdlePass bool
	// RequireLineOfFire - оперативники стреляют только по целям
	// на линии огня. По умолчанию выключено: видимость и дальность
	// считаются без учёта рельефа.
	RequireLineOfFire bool
	// RequireLineOfSight - монстры не замечают целей за непрозрачным рельефом.
	RequireLineOfSight bool
	// DropLoot - погибший актор высыпает инвентарь в свою клетку.
	DropLoot bool
}

const DefaultMaxTicks = 1000

// DefaultConfig создает конфиг по умолчанию
func DefaultConfig() Config {
	return Config{
		MaxTicks: DefaultMaxTicks,
		DropLoot: true,
	}
}
