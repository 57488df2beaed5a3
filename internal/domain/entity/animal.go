package entity

import "time"

// Estados del animal en la explotación.
const (
	AnimalStatusActive   = "ACTIVE"
	AnimalStatusSold     = "SOLD"
	AnimalStatusDeceased = "DECEASED"
	AnimalStatusHistoric = "HISTORIC" // no se factura
)

// Estados reproductivos.
const (
	ReproStatusEmpty       = "EMPTY"
	ReproStatusInseminated = "INSEMINATED"
	ReproStatusPregnant    = "PREGNANT"
)

// ReproData subregistro de inseminaciones (animals.repro_data, fechas en formato YYYY-MM-DD).
type ReproData struct {
	Insem1Date string `json:"insem_1_date"`
	Insem1Bull string `json:"insem_1_bull"`
	Insem2Date string `json:"insem_2_date"`
	Insem2Bull string `json:"insem_2_bull"`
}

// Animal representa una res en pupilaje.
type Animal struct {
	ID           string
	Crotal       string // identificación oficial
	ClientID     string
	BirthDate    *time.Time
	EntryDate    time.Time
	ExitDate     *time.Time // nil = sigue en la explotación
	Status       string
	ReproStatus  string
	ReproData    ReproData
	Observations string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidAnimalStatus indica si s es un estado de animal conocido.
func ValidAnimalStatus(s string) bool {
	switch s {
	case AnimalStatusActive, AnimalStatusSold, AnimalStatusDeceased, AnimalStatusHistoric:
		return true
	}
	return false
}

// ValidReproStatus indica si s es un estado reproductivo conocido.
func ValidReproStatus(s string) bool {
	switch s {
	case ReproStatusEmpty, ReproStatusInseminated, ReproStatusPregnant:
		return true
	}
	return false
}
