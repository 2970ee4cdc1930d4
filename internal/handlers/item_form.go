package handlers

import (
	"errors"
	"strconv"
	"strings"

	"gudang/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ItemForm holds the raw item fields as submitted, so an invalid form can be
// shown again exactly as typed.
type ItemForm struct {
	ItemName string `validate:"required"`
	Quantity string `validate:"required"`
	Price    string `validate:"required"`
}

// FormError is a recoverable validation failure of a submitted form.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

var requiredMessages = map[string]string{
	"ItemName": "Item name is required.",
	"Quantity": "Quantity is required.",
	"Price":    "Price is required.",
}

func readItemForm(c *fiber.Ctx) ItemForm {
	return ItemForm{
		ItemName: c.FormValue("item_name"),
		Quantity: c.FormValue("quantity"),
		Price:    c.FormValue("price"),
	}
}

func itemFormOf(item *models.Item) ItemForm {
	return ItemForm{
		ItemName: item.Name,
		Quantity: strconv.Itoa(item.Quantity),
		Price:    strconv.FormatFloat(item.Price, 'f', -1, 64),
	}
}

// Parse checks presence of every field and coerces quantity to an integer
// and price to a float. The returned error is always a *FormError.
func (f ItemForm) Parse(validate *validator.Validate) (name string, quantity int, price float64, err error) {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0].Field()
			return "", 0, 0, &FormError{Field: field, Message: requiredMessages[field]}
		}
		return "", 0, 0, &FormError{Message: err.Error()}
	}

	quantity, err = strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil {
		return "", 0, 0, &FormError{Field: "Quantity", Message: "Quantity must be a whole number."}
	}
	price, err = strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		return "", 0, 0, &FormError{Field: "Price", Message: "Price must be a number."}
	}
	return f.ItemName, quantity, price, nil
}
