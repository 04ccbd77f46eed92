package entity

// DefaultAccount describes an account seeded into a new chart.
type DefaultAccount struct {
	Code                  string
	Name                  string
	ReconciliationAllowed bool
}

var defaultAccounts = map[ChartType][]DefaultAccount{
	ChartTypeSYSCOHADA: {
		{Code: "101", Name: "Capital social"},
		{Code: "121", Name: "Report à nouveau créditeur"},
		{Code: "401", Name: "Fournisseurs, dettes en compte", ReconciliationAllowed: true},
		{Code: "411", Name: "Clients", ReconciliationAllowed: true},
		{Code: "521", Name: "Banques locales", ReconciliationAllowed: true},
		{Code: "571", Name: "Caisse siège social", ReconciliationAllowed: true},
		{Code: "601", Name: "Achats de marchandises"},
		{Code: "701", Name: "Ventes de marchandises"},
	},
	ChartTypePCG: {
		{Code: "101", Name: "Capital"},
		{Code: "110", Name: "Report à nouveau"},
		{Code: "401", Name: "Fournisseurs", ReconciliationAllowed: true},
		{Code: "411", Name: "Clients", ReconciliationAllowed: true},
		{Code: "512", Name: "Banques", ReconciliationAllowed: true},
		{Code: "530", Name: "Caisse", ReconciliationAllowed: true},
		{Code: "607", Name: "Achats de marchandises"},
		{Code: "707", Name: "Ventes de marchandises"},
	},
	ChartTypeIFRS: {
		{Code: "1000", Name: "Cash and cash equivalents", ReconciliationAllowed: true},
		{Code: "1100", Name: "Trade receivables", ReconciliationAllowed: true},
		{Code: "2000", Name: "Trade payables", ReconciliationAllowed: true},
		{Code: "3000", Name: "Share capital"},
		{Code: "3100", Name: "Retained earnings"},
		{Code: "4000", Name: "Revenue"},
		{Code: "5000", Name: "Cost of sales"},
	},
}

// DefaultAccounts returns the accounts seeded into a new chart of chartType.
func DefaultAccounts(chartType ChartType) []DefaultAccount {
	accounts := defaultAccounts[chartType]
	result := make([]DefaultAccount, len(accounts))
	copy(result, accounts)
	return result
}
