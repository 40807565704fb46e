package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_OrderConfirmationBuiltin(t *testing.T) {
	tm := NewTemplateManager()

	type line struct {
		Name     string
		Quantity int
		Price    string
	}

	html, err := tm.Render(TemplateOrderConfirmation, TemplateData{
		"name":       "Jane",
		"order_id":   "order-123",
		"order_date": "August 28, 2026",
		"items":      []line{{Name: "Gold Ring", Quantity: 2, Price: "10.00"}},
		"total":      "25.00",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Jane")
	assert.Contains(t, html, "order-123")
	assert.Contains(t, html, "Gold Ring")
	assert.Contains(t, html, "25.00")
}

func TestRender_UnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("no_such_template", TemplateData{})
	require.Error(t, err)
}

func TestAddTemplate_Override(t *testing.T) {
	tm := NewTemplateManager()

	require.NoError(t, tm.AddTemplate("greeting", "<p>Hello {{.name}}</p>"))

	html, err := tm.Render("greeting", TemplateData{"name": "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello Jane</p>", html)
}
