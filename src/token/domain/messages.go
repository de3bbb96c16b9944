package domain

import (
	"fmt"

	"github.com/goccy/go-json"
)

type balanceQuery struct {
	Balance struct {
		Address string `json:"address"`
	} `json:"balance"`
}

type tokenInfoQuery struct {
	TokenInfo struct{} `json:"token_info"`
}

type mintMsg struct {
	Mint struct {
		Recipient string `json:"recipient"`
		Amount    string `json:"amount"`
	} `json:"mint"`
}

// BalanceResponse answers balance{address}.
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// TokenInfoResponse answers token_info{}.
type TokenInfoResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    int    `json:"decimals"`
	TotalSupply string `json:"total_supply"`
}

func BalanceQuery(address string) ([]byte, error) {
	var q balanceQuery
	q.Balance.Address = address
	return json.Marshal(q)
}

func TokenInfoQuery() ([]byte, error) {
	return json.Marshal(tokenInfoQuery{})
}

// MintMsg builds the CW20 mint execute message. rawAmount is in base units.
func MintMsg(recipient, rawAmount string) ([]byte, error) {
	if !rawPattern.MatchString(rawAmount) {
		return nil, fmt.Errorf("%w: %q is not a base-unit integer", ErrInvalidAmount, rawAmount)
	}
	var m mintMsg
	m.Mint.Recipient = recipient
	m.Mint.Amount = rawAmount
	return json.Marshal(m)
}
