package bodies

type ConfirmSubscriptionBody struct {
	Network  string `json:"network" validate:"required,oneof=ethereum polygon arbitrum optimism solana"`
	PlanCode string `json:"plan_code" validate:"required,oneof=month quarter year"`
	TxHash   string `json:"tx_hash" validate:"required,min=10,max=120"`
}
