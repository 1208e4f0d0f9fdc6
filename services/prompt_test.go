package services

import (
	"testing"

	"IsletmeBulucu/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	q := models.Query{
		Province:     models.Option{Value: "istanbul", Label: "İstanbul"},
		District:     models.Option{Value: "kadikoy", Label: "Kadıköy"},
		MainCategory: models.Option{Value: "yeme-icme", Label: "Yeme & İçme"},
	}

	system, user := BuildPrompt(q)
	assert.Contains(t, system, "one JSON object per line")
	assert.Contains(t, user, "the 'Kadıköy' district of 'İstanbul'")
	assert.Contains(t, user, "- Main Category: 'Yeme & İçme'")
	assert.Contains(t, user, "- Sub-category: any")
	assert.NotContains(t, user, "neighborhood")

	q.Neighborhood = models.Option{Value: "moda", Label: "Caferağa (Moda)"}
	q.SubCategory = models.Option{Value: "kafe", Label: "Kafe"}
	_, user = BuildPrompt(q)
	assert.Contains(t, user, "the 'Caferağa (Moda)' neighborhood of the 'Kadıköy' district")
	assert.Contains(t, user, "- Sub-category: 'Kafe'")
}
