package rebalance

import "github.com/shopspring/decimal"

// DemoSnapshot returns the default configuration with a few sample holdings.
func DemoSnapshot() Snapshot {
	return Snapshot{
		Config: DefaultConfig(),
		Holdings: []Holding{
			{ID: "1", Ticker: "AESB3", Name: "Aes Brasil", Category: DomesticEquity, Quantity: Q(450), Price: decimal.RequireFromString("14.11"), Target: 33},
			{ID: "2", Ticker: "BBAS3", Name: "Banco do Brasil", Category: DomesticEquity, Quantity: Q(128), Price: decimal.RequireFromString("32.90"), Target: 33},
			{ID: "3", Ticker: "BBSE3", Name: "BB Seguridade", Category: DomesticEquity, Quantity: Q(150), Price: decimal.RequireFromString("23.92"), Target: 34},
			{ID: "4", Ticker: "MXRF11", Name: "Maxi Renda FII", Category: DomesticFund, Quantity: Q(100), Price: decimal.RequireFromString("10.06"), Target: 100},
		},
	}
}

// EmptySnapshot returns the default configuration without holdings.
func EmptySnapshot() Snapshot {
	return Snapshot{Config: DefaultConfig()}
}
