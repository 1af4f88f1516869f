package output

// DefaultAssumptions lists the rules applied by the calculator, rendered in detailed outputs.
var DefaultAssumptions = []string{
	"CNSS: 4,29 % of gross, capped at a 6 000 MAD base",
	"AMO: 2,26 % of gross, uncapped",
	"IPE: 0,19 % of gross, capped at a 6 000 MAD base",
	"Frais professionnels: 25 % of gross, capped at 2 916,66 MAD (IR base only)",
	"IR: 2025 monthly scale, exempt up to 3 333,33 MAD taxable",
	"Dependents: 500 MAD per person per year off the IR, never below zero",
	"Seniority bonus: 5/10/15/20/25 % after 2/5/12/20/25 years",
	"Market position: estimated from a fixed 2025 reference table",
}
