package cmd

import "time"

// Config carries the runtime settings of the service. Values come from the
// environment; main parses them before wiring the composition root.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RabbitURL  string

	CommissionRate       float64
	ResetTokenTTL        time.Duration
	DriverStaleThreshold time.Duration
}
