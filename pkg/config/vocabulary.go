package config

// built-in vocabularies, used when the config file doesn't override them

var defaultMonetaryPolicyTerms = []string{
	"fed", "federal reserve", "ecb", "boj", "boe", "central bank", "rate cut",
	"rate hike", "interest rate", "rate decision", "monetary policy", "fomc",
	"quantitative easing", "tapering",
}

var defaultEconomicDataTerms = []string{
	"gdp", "cpi", "inflation", "unemployment", "nonfarm payrolls", "nfp",
	"retail sales", "pmi", "trade balance", "consumer confidence",
}

var defaultMarketCrisisTerms = []string{
	"crash", "collapse", "crisis", "panic", "selloff", "plunge", "meltdown",
	"default", "contagion", "emergency", "circuit breaker", "flash crash",
	"volatility",
}

var defaultGeopoliticalTerms = []string{
	"war", "sanctions", "conflict", "invasion", "election", "coup", "embargo",
	"tariff", "trade war", "geopolitical",
}

var defaultTechnicalTerms = []string{
	"breakout", "support", "resistance", "trend reversal", "golden cross",
	"death cross", "overbought", "oversold", "divergence",
}

var defaultUrgencyWords = []string{
	"breaking", "urgent", "now", "alert", "just in", "immediate", "emergency",
	"flash",
}

var defaultImpactWords = []string{
	"massive", "historic", "unprecedented", "record", "huge", "major",
	"significant", "extreme", "severe", "dramatic", "crash", "collapse",
	"emergency", "panic", "surge",
}

var defaultHighImpactWords = []string{
	"crash", "surge", "collapse", "emergency", "unprecedented", "panic",
}

var defaultMediumImpactWords = []string{
	"rally", "drop", "spike", "decline", "jump", "tumble", "slide",
}

var defaultCredibleSources = []string{
	"reuters", "bloomberg", "financial times", "wall street journal", "cnbc",
	"marketwatch",
}

var defaultInstruments = []string{
	"usd/jpy", "eur/usd", "gbp/usd", "aud/usd", "usd/chf", "usd/cad",
	"eur/jpy", "gbp/jpy", "btc", "bitcoin", "eth", "ethereum", "gold", "xau",
	"oil", "wti", "dollar", "yen", "euro", "pound", "nikkei", "s&p", "dow",
	"nasdaq",
}

var defaultDomainVocabulary = []string{
	"market", "forex", "currency", "trading", "stocks", "bonds", "crypto",
	"bitcoin", "dollar", "yen", "euro", "rate", "inflation", "economy",
	"earnings", "fed", "central bank", "gdp", "investment", "price",
}

var defaultActionWords = []string{
	"buy", "sell", "trade", "watch", "monitor", "hedge", "position", "entry",
	"exit", "target", "stop",
}

var defaultReliableSources = []string{
	"reuters", "bloomberg", "financial times", "forexlive", "investing.com",
	"marketwatch",
}
