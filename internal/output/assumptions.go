package output

import (
	"fmt"

	"github.com/whatif/growth-simulator/internal/calculation"
	"github.com/whatif/growth-simulator/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions rendered in detailed outputs,
// built from the live catalog and engine factors.
func GenerateAssumptions() []string {
	out := []string{
		fmt.Sprintf("Adjusted return = average annual return x risk multiplier; curves compound at %s / %s / %s of it",
			calculation.ConservativeFactor, calculation.ExpectedFactor, calculation.OptimisticFactor),
		"Annual compounding, no contributions, fees, taxes or inflation",
		"Yearly values rounded to whole currency units",
	}
	for _, ac := range domain.AssetClasses() {
		out = append(out, fmt.Sprintf("%s: %s%% average annual return (%s risk)", ac.Name, ac.AverageAnnualReturn.String(), ac.RiskTier))
	}
	for _, rp := range domain.RiskProfiles() {
		out = append(out, fmt.Sprintf("%s profile: x%s multiplier", rp.Name, rp.Multiplier.String()))
	}
	return out
}
