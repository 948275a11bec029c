package model

type CreateCustomer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type CreateAccount struct {
	CustomerId     string  `json:"customer_id"`
	AccountType    string  `json:"account_type"`
	InitialBalance float64 `json:"initial_balance"`
	InterestRate   float64 `json:"interest_rate"`
	OverdraftLimit float64 `json:"overdraft_limit"`
}

type MoveFunds struct {
	Amount float64 `json:"amount"`
}

type TransferFunds struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Amount      float64 `json:"amount"`
}
