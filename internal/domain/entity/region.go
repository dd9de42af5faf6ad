package entity

import "github.com/google/uuid"

// Region is Chilean region reference data used by the checkout address form.
type Region struct {
	ID     uuid.UUID
	Name   string
	Cities []City
}

// City belongs to exactly one Region.
type City struct {
	ID       uuid.UUID
	RegionID uuid.UUID
	Name     string
}
