package domain

import "time"

// Business validation constants
const (
	MaxIDLength              = 64
	certificationGracePeriod = 24 * time.Hour // сертификат действует до конца дня истечения
)

// Time format constants
const (
	TimeFormat = time.RFC3339
	DateFormat = "2006-01-02"
)
