package dtos

type PlanDTO struct {
	Code     string  `json:"code"`
	Title    string  `json:"title"`
	Days     int     `json:"days"`
	PriceUSD float64 `json:"price_usd"`
}

type NetworkDTO struct {
	Code   string `json:"code"`
	Wallet string `json:"wallet"`
}

type PlansAndNetworksDTO struct {
	Plans    []PlanDTO    `json:"plans"`
	Networks []NetworkDTO `json:"networks"`
}
