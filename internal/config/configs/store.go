package configs

import (
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Store selects the entity store backend. Every command runs in one
// transaction bounded by TxTimeout.
type Store struct {
	Driver    string        `env:"DRIVER" envDefault:"postgres"`
	TxTimeout time.Duration `env:"TX_TIMEOUT" envDefault:"5s"`
}

// DriverName normalises Driver. Unknown drivers fall back to postgres.
func (c Store) DriverName() string {
	if strings.EqualFold(c.Driver, DriverMemory) {
		return DriverMemory
	}
	return DriverPostgres
}
