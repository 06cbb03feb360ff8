package catalog

import "github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"

// defaultEntries is the built-in reference table of symbols the app features.
// Base prices are rough, only used to seed synthetic data.
var defaultEntries = []Entry{
	// Large-cap tech
	{Symbol: "AAPL", Name: "Apple Inc.", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#000000", LogoText: "", BasePrice: 228},
	{Symbol: "MSFT", Name: "Microsoft Corporation", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#00A4EF", LogoText: "M", BasePrice: 430},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#4285F4", LogoText: "G", BasePrice: 172},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", AssetClass: model.AssetEquity, Sector: "Consumer Cyclical", LogoColor: "#FF9900", LogoText: "a", BasePrice: 186},
	{Symbol: "META", Name: "Meta Platforms Inc.", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#0668E1", LogoText: "∞", BasePrice: 512},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#76B900", LogoText: "N", BasePrice: 128},
	{Symbol: "TSLA", Name: "Tesla Inc.", AssetClass: model.AssetEquity, Sector: "Consumer Cyclical", LogoColor: "#CC0000", LogoText: "T", BasePrice: 248},
	{Symbol: "NFLX", Name: "Netflix Inc.", AssetClass: model.AssetEquity, Sector: "Communication Services", LogoColor: "#E50914", LogoText: "N", BasePrice: 680},
	{Symbol: "AMD", Name: "Advanced Micro Devices Inc.", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#ED1C24", LogoText: "A", BasePrice: 155},
	{Symbol: "INTC", Name: "Intel Corporation", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#0071C5", LogoText: "i", BasePrice: 31},
	{Symbol: "CRM", Name: "Salesforce Inc.", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#00A1E0", LogoText: "S", BasePrice: 265},
	{Symbol: "ORCL", Name: "Oracle Corporation", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#F80000", LogoText: "O", BasePrice: 140},
	{Symbol: "ADBE", Name: "Adobe Inc.", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#FF0000", LogoText: "A", BasePrice: 530},
	{Symbol: "PLTR", Name: "Palantir Technologies Inc.", AssetClass: model.AssetEquity, Sector: "Technology", LogoColor: "#101113", LogoText: "P", BasePrice: 29},

	// Financials
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", AssetClass: model.AssetEquity, Sector: "Financial Services", LogoColor: "#117ACA", LogoText: "J", BasePrice: 205},
	{Symbol: "BAC", Name: "Bank of America Corporation", AssetClass: model.AssetEquity, Sector: "Financial Services", LogoColor: "#E31837", LogoText: "B", BasePrice: 40},
	{Symbol: "V", Name: "Visa Inc.", AssetClass: model.AssetEquity, Sector: "Financial Services", LogoColor: "#1A1F71", LogoText: "V", BasePrice: 270},
	{Symbol: "MA", Name: "Mastercard Incorporated", AssetClass: model.AssetEquity, Sector: "Financial Services", LogoColor: "#EB001B", LogoText: "M", BasePrice: 455},
	{Symbol: "GS", Name: "The Goldman Sachs Group Inc.", AssetClass: model.AssetEquity, Sector: "Financial Services", LogoColor: "#6B8CC7", LogoText: "G", BasePrice: 460},

	// Consumer and healthcare
	{Symbol: "DIS", Name: "The Walt Disney Company", AssetClass: model.AssetEquity, Sector: "Communication Services", LogoColor: "#113CCF", LogoText: "D", BasePrice: 95},
	{Symbol: "KO", Name: "The Coca-Cola Company", AssetClass: model.AssetEquity, Sector: "Consumer Defensive", LogoColor: "#F40009", LogoText: "K", BasePrice: 63},
	{Symbol: "PEP", Name: "PepsiCo Inc.", AssetClass: model.AssetEquity, Sector: "Consumer Defensive", LogoColor: "#004B93", LogoText: "P", BasePrice: 175},
	{Symbol: "MCD", Name: "McDonald's Corporation", AssetClass: model.AssetEquity, Sector: "Consumer Cyclical", LogoColor: "#FFC72C", LogoText: "M", BasePrice: 290},
	{Symbol: "NKE", Name: "NIKE Inc.", AssetClass: model.AssetEquity, Sector: "Consumer Cyclical", LogoColor: "#111111", LogoText: "✓", BasePrice: 80},
	{Symbol: "SBUX", Name: "Starbucks Corporation", AssetClass: model.AssetEquity, Sector: "Consumer Cyclical", LogoColor: "#00704A", LogoText: "S", BasePrice: 95},
	{Symbol: "WMT", Name: "Walmart Inc.", AssetClass: model.AssetEquity, Sector: "Consumer Defensive", LogoColor: "#0071CE", LogoText: "W", BasePrice: 75},
	{Symbol: "JNJ", Name: "Johnson & Johnson", AssetClass: model.AssetEquity, Sector: "Healthcare", LogoColor: "#D71920", LogoText: "J", BasePrice: 158},
	{Symbol: "PFE", Name: "Pfizer Inc.", AssetClass: model.AssetEquity, Sector: "Healthcare", LogoColor: "#0093D0", LogoText: "P", BasePrice: 29},
	{Symbol: "UNH", Name: "UnitedHealth Group Incorporated", AssetClass: model.AssetEquity, Sector: "Healthcare", LogoColor: "#002677", LogoText: "U", BasePrice: 520},

	// Industrials and energy
	{Symbol: "BA", Name: "The Boeing Company", AssetClass: model.AssetEquity, Sector: "Industrials", LogoColor: "#0039A6", LogoText: "B", BasePrice: 180},
	{Symbol: "XOM", Name: "Exxon Mobil Corporation", AssetClass: model.AssetEquity, Sector: "Energy", LogoColor: "#ED1B2D", LogoText: "X", BasePrice: 115},
	{Symbol: "F", Name: "Ford Motor Company", AssetClass: model.AssetEquity, Sector: "Consumer Cyclical", LogoColor: "#003478", LogoText: "F", BasePrice: 11},
	{Symbol: "GE", Name: "GE Aerospace", AssetClass: model.AssetEquity, Sector: "Industrials", LogoColor: "#3B73B9", LogoText: "G", BasePrice: 165},

	// ETFs
	{Symbol: "SPY", Name: "SPDR S&P 500 ETF Trust", AssetClass: model.AssetETF, Sector: "Index Fund", LogoColor: "#1F6E43", LogoText: "S", BasePrice: 555},
	{Symbol: "QQQ", Name: "Invesco QQQ Trust", AssetClass: model.AssetETF, Sector: "Index Fund", LogoColor: "#0D5EAF", LogoText: "Q", BasePrice: 480},
	{Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", AssetClass: model.AssetETF, Sector: "Index Fund", LogoColor: "#96151D", LogoText: "V", BasePrice: 272},
	{Symbol: "VOO", Name: "Vanguard S&P 500 ETF", AssetClass: model.AssetETF, Sector: "Index Fund", LogoColor: "#96151D", LogoText: "V", BasePrice: 510},

	// Crypto
	{Symbol: "BTC", Name: "Bitcoin", AssetClass: model.AssetCrypto, Sector: "Cryptocurrency", LogoColor: "#F7931A", LogoText: "₿", BasePrice: 64000},
	{Symbol: "ETH", Name: "Ethereum", AssetClass: model.AssetCrypto, Sector: "Cryptocurrency", LogoColor: "#627EEA", LogoText: "Ξ", BasePrice: 3400},
	{Symbol: "SOL", Name: "Solana", AssetClass: model.AssetCrypto, Sector: "Cryptocurrency", LogoColor: "#9945FF", LogoText: "S", BasePrice: 150},
	{Symbol: "DOGE", Name: "Dogecoin", AssetClass: model.AssetCrypto, Sector: "Cryptocurrency", LogoColor: "#C2A633", LogoText: "Ð", BasePrice: 0.12},
	{Symbol: "COIN", Name: "Coinbase Global Inc.", AssetClass: model.AssetEquity, Sector: "Financial Services", LogoColor: "#0052FF", LogoText: "C", BasePrice: 225},
}
