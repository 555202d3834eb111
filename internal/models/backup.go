package models

import "time"

// Backup - полная резервная копия данных
type Backup struct {
	Orders     []Order            `json:"orders"`
	Profiles   map[string]Profile `json:"profiles"`
	ExportedAt time.Time          `json:"exportedAt"`
}
