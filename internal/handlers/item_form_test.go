package handlers

import (
	"testing"

	"gudang/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemForm_Parse(t *testing.T) {
	validate := validator.New()

	name, qty, price, err := ItemForm{ItemName: "Widget", Quantity: "10", Price: "2.5"}.Parse(validate)
	require.NoError(t, err)
	assert.Equal(t, "Widget", name)
	assert.Equal(t, 10, qty)
	assert.Equal(t, 2.5, price)

	tests := []struct {
		form  ItemForm
		field string
	}{
		{ItemForm{Quantity: "1", Price: "1"}, "ItemName"},
		{ItemForm{ItemName: "w", Price: "1"}, "Quantity"},
		{ItemForm{ItemName: "w", Quantity: "1"}, "Price"},
		{ItemForm{ItemName: "w", Quantity: "1e3", Price: "1"}, "Quantity"},
		{ItemForm{ItemName: "w", Quantity: "99999999999999999999", Price: "1"}, "Quantity"},
		{ItemForm{ItemName: "w", Quantity: "1", Price: "1,50"}, "Price"},
	}
	for _, tt := range tests {
		_, _, _, err := tt.form.Parse(validate)
		var formErr *FormError
		require.ErrorAs(t, err, &formErr, "%+v", tt.form)
		assert.Equal(t, tt.field, formErr.Field)
		assert.NotEmpty(t, formErr.Message)
	}
}

func TestItemFormOf(t *testing.T) {
	form := itemFormOf(&models.Item{ID: 3, Name: "Widget", Quantity: -2, Price: 0.1})
	assert.Equal(t, ItemForm{ItemName: "Widget", Quantity: "-2", Price: "0.1"}, form)
}
