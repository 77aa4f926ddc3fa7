package ai

import (
	"fmt"
	"strings"

	"github.com/somaiyarv7-jpg/Voiceleger/models"
)

const promptTemplate = `You are VoiceLedger AI, a dynamic pricing expert for small businesses.
Analyze the following new transaction and the provided sales history to give a pricing recommendation.

Sales History:
%s

New Transaction (from user's voice):
"%s"

Your tasks:
1. Parse the new transaction into a structured format (item, quantity, pricePerItem, totalSale). The item should be a single noun (e.g., 't-shirt', not '5 t-shirts').
2. Based on the new transaction and sales history, determine if the item's price should be adjusted. Consider factors like sales frequency and recent price points. Provide a simple, plausible pricing recommendation.
3. Generate a concise reason for your recommendation.
4. Create a sentence to be spoken aloud that delivers the recommendation clearly and professionally.
5. Return all of this information in the specified JSON format.`

// buildPrompt embeds the rendered sales history and the literal transcript.
func buildPrompt(transcript string, salesHistory []models.Transaction) string {
	return fmt.Sprintf(promptTemplate, renderSalesHistory(salesHistory), transcript)
}

// renderSalesHistory produces one "<date>: Sold <quantity> of <item> for
// $<totalSale>" line per transaction, newline-joined.
func renderSalesHistory(sales []models.Transaction) string {
	lines := make([]string, 0, len(sales))
	for _, s := range sales {
		lines = append(lines, fmt.Sprintf("%s: Sold %d of %s for $%v", s.Date, s.Quantity, s.Item, s.TotalSale))
	}
	return strings.Join(lines, "\n")
}
