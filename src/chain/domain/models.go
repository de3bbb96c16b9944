package domain

// ContractMsg is a single execute message addressed to a contract.
type ContractMsg struct {
	Contract string
	Msg      []byte
}

// TxResult is what the chain reports back for an included transaction.
type TxResult struct {
	Hash    string `json:"hash"`
	Height  int64  `json:"height"`
	GasUsed int64  `json:"gas_used"`
}
