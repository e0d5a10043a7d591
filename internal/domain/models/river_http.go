package models

// Requests for the river HTTP endpoints. Defined in domain for consistency and reuse.

type RiverRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required"`
	Lookback string `query:"lookback" json:"lookback" default:"2y" validate:"oneof=1y 2y 5y 10y max"`
}

type CommentaryRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required"`
	Lookback string `query:"lookback" json:"lookback" default:"2y" validate:"oneof=1y 2y 5y 10y max"`
}
