package config

// DefaultTokenDecimals is used when a tenant does not declare its token decimals
const DefaultTokenDecimals uint8 = 18

// BuiltinTenants are the DAOs agora knows without an agora.toml
func BuiltinTenants() map[string]Tenant {
	return map[string]Tenant{
		"optimism": {
			Name:          "Optimism",
			ChainID:       10,
			Governor:      "0xcDF27F107725988f2261Ce2256bDfCdE8B382B10",
			Token:         "0x4200000000000000000000000000000000000042",
			TokenSymbol:   "OP",
			TokenDecimals: 18,
		},
		"ens": {
			Name:          "ENS",
			ChainID:       1,
			Governor:      "0x323A76393544d5ecca80cd6ef2A560C6a395b7E3",
			Token:         "0xC18360217D8F7Ab5e7c516566761Ea12Ce7F9D72",
			TokenSymbol:   "ENS",
			TokenDecimals: 18,
		},
		"uniswap": {
			Name:          "Uniswap",
			ChainID:       1,
			Governor:      "0x408ED6354d4973f66138C91495F2f2FCbd8724C3",
			Token:         "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
			TokenSymbol:   "UNI",
			TokenDecimals: 18,
		},
	}
}
