package handlers

import (
	"errors"

	"gudang/internal/middleware"
	"gudang/internal/services"
	"gudang/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// itemIDParam matches positive integers only; anything else is a 404.
const itemIDParam = ":id<int;min(1)>"

// InventoryHandler handles HTTP requests for the inventory pages.
type InventoryHandler struct {
	service  *services.InventoryService
	validate *validator.Validate
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the inventory routes with their access gates.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", middleware.LoginRequired("Please log in to access the inventory."), h.HandleIndex)

	addGate := []fiber.Handler{
		middleware.LoginRequired("Please log in to add items."),
		middleware.AdminRequired("You do not have permission to add items."),
	}
	router.Get("/add", append(addGate, h.HandleAddForm)...)
	router.Post("/add", append(addGate, h.HandleAdd)...)

	editGate := []fiber.Handler{
		middleware.LoginRequired("Please log in to edit items."),
		middleware.AdminRequired("You do not have permission to edit items."),
	}
	router.Get("/edit/"+itemIDParam, append(editGate, h.HandleEditForm)...)
	router.Post("/edit/"+itemIDParam, append(editGate, h.HandleEdit)...)

	router.Get("/delete/"+itemIDParam,
		middleware.LoginRequired("Please log in to delete items."),
		middleware.AdminRequired("You do not have permission to delete items."),
		h.HandleDelete)
}

// HandleIndex lists every item. The add affordance is shown to admins only.
func (h *InventoryHandler) HandleIndex(c *fiber.Ctx) error {
	items, err := h.service.ListItems()
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "index", "Inventory", fiber.Map{
		"Items":         items,
		"ShowAddButton": middleware.GetSession(c).IsAdmin(),
	})
}

// HandleAddForm shows an empty item form.
func (h *InventoryHandler) HandleAddForm(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, "Add Item", "/add", ItemForm{})
}

// HandleAdd creates an item from the submitted form.
func (h *InventoryHandler) HandleAdd(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	form := readItemForm(c)
	name, quantity, price, err := form.Parse(h.validate)
	if err != nil {
		return h.rejectForm(c, "Add Item", "/add", form, err)
	}

	if _, err := h.service.CreateItem(name, quantity, price, sess.Username); err != nil {
		return err
	}
	sess.Flash(session.Success, "Item added successfully!")
	return c.Redirect(middleware.IndexPath)
}

// HandleEditForm shows the form pre-filled with the stored item.
func (h *InventoryHandler) HandleEditForm(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	item, ok, err := h.service.FindItem(id)
	if err != nil {
		return err
	}
	if !ok {
		return itemNotFound(c)
	}
	return h.renderForm(c, fiber.StatusOK, "Edit Item", c.Path(), itemFormOf(item))
}

// HandleEdit overwrites an existing item with the submitted form.
func (h *InventoryHandler) HandleEdit(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	id, err := itemID(c)
	if err != nil {
		return err
	}
	if _, ok, err := h.service.FindItem(id); err != nil {
		return err
	} else if !ok {
		return itemNotFound(c)
	}

	form := readItemForm(c)
	name, quantity, price, err := form.Parse(h.validate)
	if err != nil {
		return h.rejectForm(c, "Edit Item", c.Path(), form, err)
	}

	updated, err := h.service.UpdateItem(id, name, quantity, price, sess.Username)
	if err != nil {
		return err
	}
	if !updated {
		return itemNotFound(c)
	}
	sess.Flash(session.Success, "Item updated successfully!")
	return c.Redirect(middleware.IndexPath)
}

// HandleDelete removes an item without confirmation.
func (h *InventoryHandler) HandleDelete(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	id, err := itemID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteItem(id, sess.Username)
	if err != nil {
		return err
	}
	if deleted {
		sess.Flash(session.Success, "Item deleted successfully!")
	} else {
		sess.Flash(session.Danger, "Item not found.")
	}
	return c.Redirect(middleware.IndexPath)
}

func (h *InventoryHandler) renderForm(c *fiber.Ctx, status int, title, action string, form ItemForm) error {
	return render(c, status, "item_form", title, fiber.Map{
		"Action": action,
		"Form":   form,
	})
}

// rejectForm shows the submitted form again with the validation message.
func (h *InventoryHandler) rejectForm(c *fiber.Ctx, title, action string, form ItemForm, err error) error {
	var formErr *FormError
	if !errors.As(err, &formErr) {
		return err
	}
	middleware.GetSession(c).Flash(session.Danger, formErr.Message)
	return h.renderForm(c, fiber.StatusUnprocessableEntity, title, action, form)
}

func itemID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

func itemNotFound(c *fiber.Ctx) error {
	middleware.GetSession(c).Flash(session.Danger, "Item not found.")
	return c.Redirect(middleware.IndexPath)
}
