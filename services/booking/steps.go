package booking

// Step is one stage of the fixed, linearly ordered booking flow.
type Step string

const (
	StepSearch       Step = "search"
	StepResults      Step = "results"
	StepDetails      Step = "details"
	StepSeats        Step = "seats"
	StepPassengers   Step = "passengers"
	StepExtras       Step = "extras"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

var stepOrder = []Step{
	StepSearch,
	StepResults,
	StepDetails,
	StepSeats,
	StepPassengers,
	StepExtras,
	StepPayment,
	StepConfirmation,
}

// ValidStep reports whether s names one of the flow steps.
func ValidStep(s Step) bool {
	return stepIndex(s) >= 0
}

func stepIndex(s Step) int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}
