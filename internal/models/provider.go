package models

// Provider is one entry in the childcare-provider directory.
type Provider struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Services     []string `json:"services"` // e.g. ["NANNY", "DAYCARE", "NIGHT_NURSE"]
	Rating       float64  `json:"rating"`   // 0..5
	PricePerHour float64  `json:"price_per_hour"`
	Verified     bool     `json:"verified"`
}
