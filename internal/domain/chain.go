package domain

// Chain is a blockchain the registry indexes agents from.
type Chain struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	ExplorerURL string `json:"explorer_url"`
	Testnet     bool   `json:"testnet,omitempty"`
}

// SupportedChains is the static table of chains the browser knows about.
// The registry may index more; unknown chain IDs are displayed raw.
var SupportedChains = []Chain{
	{ID: 1, Name: "Ethereum", ShortName: "eth", ExplorerURL: "https://etherscan.io"},
	{ID: 10, Name: "Optimism", ShortName: "op", ExplorerURL: "https://optimistic.etherscan.io"},
	{ID: 100, Name: "Gnosis", ShortName: "gno", ExplorerURL: "https://gnosisscan.io"},
	{ID: 137, Name: "Polygon", ShortName: "pol", ExplorerURL: "https://polygonscan.com"},
	{ID: 8453, Name: "Base", ShortName: "base", ExplorerURL: "https://basescan.org"},
	{ID: 42161, Name: "Arbitrum One", ShortName: "arb", ExplorerURL: "https://arbiscan.io"},
	{ID: 11155111, Name: "Sepolia", ShortName: "sep", ExplorerURL: "https://sepolia.etherscan.io", Testnet: true},
}

// ChainByID returns the chain with the given ID, or nil if unknown.
func ChainByID(id int) *Chain {
	for i := range SupportedChains {
		if SupportedChains[i].ID == id {
			return &SupportedChains[i]
		}
	}
	return nil
}
