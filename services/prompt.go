package services

import (
	"fmt"
	"strings"

	"IsletmeBulucu/models"
)

const systemPrompt = `You are a local business directory expert for Turkey. You list real businesses from Google Maps data.
Answer with newline-delimited JSON: exactly one JSON object per line, no array brackets, no markdown, no commentary.
Each object has the keys businessName, mainCategory, subCategory, phone, district, neighborhood, address, googleRating, googleMapsLink, googlePlaceId, coordinates.
Use null for phone, googleRating, googlePlaceId or coordinates when unknown. googleRating is a number such as 4.5. coordinates is "latitude,longitude".
Do not summarize, sample or limit the number of results.`

// BuildPrompt returns the system and user prompt for one query.
func BuildPrompt(q models.Query) (string, string) {
	var b strings.Builder

	area := fmt.Sprintf("the '%s' district of '%s'", q.District.Label, q.Province.Label)
	if q.Neighborhood.Value != "" {
		area = fmt.Sprintf("the '%s' neighborhood of %s", q.Neighborhood.Label, area)
	}
	fmt.Fprintf(&b, "Find all businesses in %s, Turkey that match the following categories:\n", area)
	fmt.Fprintf(&b, "- Main Category: '%s'\n", q.MainCategory.Label)
	if q.SubCategory.Value != "" {
		fmt.Fprintf(&b, "- Sub-category: '%s'\n", q.SubCategory.Label)
	} else {
		b.WriteString("- Sub-category: any\n")
	}
	b.WriteString("\nWrite one JSON object per line as soon as each business is found.")

	return systemPrompt, b.String()
}
