package entity

import "time"

// IssuerSettings datos del emisor que aparecen en todas las facturas (app_settings).
type IssuerSettings struct {
	FiscalName string
	NIF        string
	Address    string
	Phone      string
	Email      string
	UpdatedAt  time.Time
}
