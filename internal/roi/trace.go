package roi

import (
	"fmt"
	"strings"

	"github.com/n8nops/roi-dashboard/pkg/utils"
)

// Formula traces are the step-by-step derivations shown in dashboard
// tooltips. Every number in a trace is recomputable from the same inputs the
// engine received, so the displayed derivation can be audited against the
// stored figures.

func perExecutionTrace(p perExecutionParams, executions int, totalMinutes, totalHours, laborCost float64, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time saved per execution: %s minutes\n", utils.FormatNumber(p.minutesSaved))
	fmt.Fprintf(&b, "Hourly labor rate: %s per hour\n", utils.FormatCurrency(p.hourlyRate, currency))
	b.WriteString("Convert minutes to hours: ÷ 60 minutes\n")
	fmt.Fprintf(&b, "Number of successful executions: %d execution%s\n", executions, pluralInt(executions))
	b.WriteString("\nCalculation:\n")
	fmt.Fprintf(&b, "%d execution%s × %s min = %s minutes\n",
		executions, pluralInt(executions), utils.FormatNumber(p.minutesSaved), utils.FormatNumber(totalMinutes))
	fmt.Fprintf(&b, "%s min ÷ 60 = %.2f hours\n", utils.FormatNumber(totalMinutes), totalHours)
	fmt.Fprintf(&b, "%.2f hours × %s/hour = %s",
		totalHours, utils.FormatCurrency(p.hourlyRate, currency), utils.FormatCurrency(laborCost, currency))
	return b.String()
}

func recurringTaskTrace(p recurringTaskParams, days int, periods, totalOccurrences, totalMinutes, totalHours, laborCost float64, currency string) string {
	noun := frequencyNoun(p.frequency)

	var since, occurrencesLine string
	if p.frequency == "daily" {
		since = fmt.Sprintf("%d day%s since workflow deployment", days, pluralInt(days))
		occurrencesLine = fmt.Sprintf("%d day%s × %s occurrence%s per day = %s total occurrence%s",
			days, pluralInt(days),
			utils.FormatNumber(p.occurrences), pluralFloat(p.occurrences),
			utils.FormatNumber(totalOccurrences), pluralFloat(totalOccurrences))
	} else {
		since = fmt.Sprintf("%d day%s since workflow deployment (%.2f %ss)", days, pluralInt(days), periods, noun)
		occurrencesLine = fmt.Sprintf("%.2f %ss × %s occurrence%s per %s = %.2f total occurrence%s",
			periods, noun,
			utils.FormatNumber(p.occurrences), pluralFloat(p.occurrences), noun,
			totalOccurrences, pluralFloat(totalOccurrences))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Manual work pattern: %s time%s per %s\n", utils.FormatNumber(p.occurrences), pluralFloat(p.occurrences), noun)
	fmt.Fprintf(&b, "Time saved per occurrence: %s minutes\n", utils.FormatNumber(p.minutesSaved))
	fmt.Fprintf(&b, "Hourly labor rate: %s per hour\n", utils.FormatCurrency(p.hourlyRate, currency))
	b.WriteString("Convert minutes to hours: ÷ 60 minutes\n")
	b.WriteString(since)
	b.WriteString("\n\n")
	b.WriteString(occurrencesLine)
	b.WriteString("\n\nCalculation:\n")
	fmt.Fprintf(&b, "%.2f occurrence%s × %s min = %.2f minutes\n",
		totalOccurrences, pluralFloat(totalOccurrences), utils.FormatNumber(p.minutesSaved), totalMinutes)
	fmt.Fprintf(&b, "%.2f min ÷ 60 = %.2f hours\n", totalMinutes, totalHours)
	fmt.Fprintf(&b, "%.2f hours × %s/hour = %s",
		totalHours, utils.FormatCurrency(p.hourlyRate, currency), utils.FormatCurrency(laborCost, currency))
	return b.String()
}

func capabilityFrequencyTrace(p newCapabilityParams, days int, periods, value float64, currency string) string {
	noun := frequencyNoun(p.frequency)

	since := fmt.Sprintf("%d day%s since workflow deployment", days, pluralInt(days))
	if p.frequency != "daily" {
		since = fmt.Sprintf("%s (%.2f %ss)", since, periods, noun)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Value generation pattern: %s per %s\n", utils.FormatCurrency(p.valuePerFrequency, currency), noun)
	b.WriteString(since)
	b.WriteString("\n\nCalculation:\n")
	fmt.Fprintf(&b, "%.2f %s%s × %s/%s = %s",
		periods, noun, pluralFloat(periods),
		utils.FormatCurrency(p.valuePerFrequency, currency), noun, utils.FormatCurrency(value, currency))
	return b.String()
}

func capabilityConversionTrace(p newCapabilityParams, executions int, totalItems, convertedItems, value float64, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Items per execution: %s\n", utils.FormatNumber(p.clientsPerReport))
	fmt.Fprintf(&b, "Conversion rate: %s%%\n", utils.FormatNumber(p.reactivationRatePercent))
	fmt.Fprintf(&b, "Value per converted item: %s\n", utils.FormatCurrency(p.valuePerClient, currency))
	fmt.Fprintf(&b, "Number of successful executions: %d execution%s\n", executions, pluralInt(executions))
	b.WriteString("\nCalculation:\n")
	fmt.Fprintf(&b, "%d execution%s × %s items = %s total items\n",
		executions, pluralInt(executions), utils.FormatNumber(p.clientsPerReport), utils.FormatNumber(totalItems))
	fmt.Fprintf(&b, "%s items × %s%% = %.2f converted items\n",
		utils.FormatNumber(totalItems), utils.FormatNumber(p.reactivationRatePercent), convertedItems)
	fmt.Fprintf(&b, "%.2f items × %s = %s",
		convertedItems, utils.FormatCurrency(p.valuePerClient, currency), utils.FormatCurrency(value, currency))
	return b.String()
}

func capabilityPerExecutionTrace(p newCapabilityParams, executions int, value float64, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Value per execution: %s\n", utils.FormatCurrency(p.valuePerExecution, currency))
	fmt.Fprintf(&b, "Number of successful executions: %d execution%s\n", executions, pluralInt(executions))
	b.WriteString("\nCalculation:\n")
	fmt.Fprintf(&b, "%d execution%s × %s = %s",
		executions, pluralInt(executions), utils.FormatCurrency(p.valuePerExecution, currency), utils.FormatCurrency(value, currency))
	return b.String()
}

func frequencyNoun(frequency string) string {
	switch frequency {
	case "daily":
		return "day"
	case "weekly":
		return "week"
	case "monthly":
		return "month"
	case "quarterly":
		return "quarter"
	}
	return frequency
}

func pluralInt(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func pluralFloat(v float64) string {
	if v == 1 {
		return ""
	}
	return "s"
}
