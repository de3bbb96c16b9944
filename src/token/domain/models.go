package domain

// Token is a CW20 token as seen by one account. Decimals is authoritative for scaling.
type Token struct {
	Address    string `json:"address"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Decimals   int    `json:"decimals"`
	RawBalance string `json:"balance"`
}

// HumanBalance is the balance in display units; zero when the raw balance is unusable.
func (t Token) HumanBalance() float64 {
	v, err := ToHumanUnits(t.RawBalance, t.Decimals)
	if err != nil {
		return 0
	}
	return v
}

// FormattedBalance is the exact decimal rendering of the balance.
func (t Token) FormattedBalance() string {
	return FormatHuman(t.RawBalance, t.Decimals)
}
