package dto

type TierDTO struct {
	MinDays     int     `json:"minDays" example:"7"`
	PricePerDay float64 `json:"pricePerDay" example:"12"`
}

type RentalPriceRequestDTO struct {
	Days int `json:"days" example:"10"`
}

type RentalPriceResponseDTO struct {
	PricePerDay float64 `json:"pricePerDay" example:"12"`
	TotalPrice  float64 `json:"totalPrice" example:"120"`
	Tier        TierDTO `json:"tier"`
	Note        string  `json:"note,omitempty" example:"duration below minimum tier, base tier applied"`
}

type ReplaceTiersRequestDTO struct {
	Tiers []TierDTO `json:"tiers"`
}
