package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateHospitalRequest accepts either a ready-made address plus region, or
// the structured fields a postal-lookup widget produces (road address, unit
// detail, extra info, province/city name), from which address and region are
// derived.
type CreateHospitalRequest struct {
	Name          string  `json:"name" validate:"required,min=2"`
	Phone         string  `json:"phone" validate:"required"`
	Homepage      *string `json:"homepage" validate:"omitempty,url"`
	Address       string  `json:"address" validate:"required_without=RoadAddress"`
	Region        string  `json:"region" validate:"required_without=Sido"`
	RoadAddress   string  `json:"road_address" validate:"omitempty"`
	AddressDetail string  `json:"address_detail" validate:"omitempty"`
	AddressExtra  string  `json:"address_extra" validate:"omitempty"`
	Sido          string  `json:"sido" validate:"omitempty"`
}

type UpdateHospitalRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Phone    *string `json:"phone" validate:"omitempty"`
	Homepage *string `json:"homepage" validate:"omitempty,url"`
	Address  *string `json:"address" validate:"omitempty"`
	Region   *string `json:"region" validate:"omitempty"`
}

// Response DTOs

type HospitalResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Region    string    `json:"region"`
	Homepage  *string   `json:"homepage,omitempty"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
