package handler

import (
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/middleware"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/utils"
)

// ListOrders возвращает список заказов.
// @Summary      Список заказов
// @Description  Возвращает заказы, новые первыми. Можно отфильтровать по товару и искать по имени, телефону или номеру бронирования
// @Tags         orders
// @Param        product_id  query     int     false  "ID товара"
// @Param        search      query     string  false  "Строка поиска"
// @Success      200  {array}   OrderSummary
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	filter := entities.OrderFilter{Search: query.Get("search")}
	if raw := query.Get("product_id"); raw != "" {
		productID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.WriteFieldErrors(w, "", map[string]string{"product_id": "numeric"})
			return
		}
		filter.ProductID = &productID
	}

	orders, err := h.orders.ListOrders(ctx, filter)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrderSummariesToJSON(orders), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        id   path      int  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{id} [get]
func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(ctx, id)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CreateOrder создаёт заказ из заполненной формы.
// @Summary      Создать заказ
// @Description  Цена, суммы и номер бронирования вычисляются на сервере
// @Tags         orders
// @Accept       json
// @Param        form  body      OrderForm  true  "Форма заказа"
// @Success      201   {object}  Order
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500   {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders [post]
func (h *AdminHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	order, err := h.orders.CreateOrder(ctx, OrderFormToIntake(form))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// UpdateOrder перезаписывает заказ.
// @Summary      Изменить заказ
// @Description  Номер бронирования не меняется, цена пересчитывается только при смене товара
// @Tags         orders
// @Accept       json
// @Param        id    path      int        true  "ID заказа"
// @Param        form  body      OrderForm  true  "Форма заказа"
// @Success      200   {object}  Order
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404   {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500   {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{id} [put]
func (h *AdminHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	form, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	order, err := h.orders.UpdateOrder(ctx, id, OrderFormToIntake(form))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to update order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ApproveOrder подтверждает оплату заказа.
// @Summary      Подтвердить оплату
// @Description  Отмечает заказ оплаченным и отправляет уведомление администратору из заголовка X-Admin-User
// @Tags         orders
// @Param        id            path      int     true   "ID заказа"
// @Param        X-Admin-User  header    string  false  "Администратор"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже подтверждён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{id}/approve [post]
func (h *AdminHandler) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orders.ApproveOrder(ctx, id, middleware.ActorFrom(ctx))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to approve order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder удаляет заказ.
// @Summary      Удалить заказ
// @Tags         orders
// @Param        id   path  int  true  "ID заказа"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{id} [delete]
func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(ctx, id); err != nil {
		writeError(ctx, h.logger, w, err, "failed to delete order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteOrders удаляет несколько заказов.
// @Summary      Удалить заказы
// @Tags         orders
// @Accept       json
// @Param        body  body      BulkDeleteRequest  true  "ID заказов"
// @Success      200   {object}  BulkDeleteResponse
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500   {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/bulk-delete [post]
func (h *AdminHandler) DeleteOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BulkDeleteRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	n, err := h.orders.DeleteOrders(ctx, req.IDs)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to delete orders")
		return
	}

	utils.WriteJSON(w, BulkDeleteResponse{Deleted: n}, http.StatusOK)
}

func (h *AdminHandler) decodeForm(w http.ResponseWriter, r *http.Request) (OrderForm, bool) {
	var form OrderForm
	if err := utils.DecodeBody(w, r, &form); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return OrderForm{}, false
	}
	if err := h.validate.Struct(form); err != nil {
		utils.WriteValidationError(w, err)
		return OrderForm{}, false
	}
	return form, true
}
