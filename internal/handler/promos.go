package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/utils"
)

// ListPromoCodes возвращает промокоды.
// @Summary      Список промокодов
// @Tags         promo-codes
// @Param        search  query     string  false  "Поиск по коду"
// @Success      200  {array}   PromoCode
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/promo-codes [get]
func (h *AdminHandler) ListPromoCodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	promos, err := h.promos.ListPromoCodes(ctx, r.URL.Query().Get("search"))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to list promo codes")
		return
	}

	utils.WriteJSON(w, PromoCodesToJSON(promos), http.StatusOK)
}

// GetPromoCode возвращает промокод.
// @Summary      Получить промокод
// @Tags         promo-codes
// @Param        id   path      int  true  "ID промокода"
// @Success      200  {object}  PromoCode
// @Failure      404  {object}  utils.ErrorResponse "Промокод не найден"
// @Router       /admin/promo-codes/{id} [get]
func (h *AdminHandler) GetPromoCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	promo, err := h.promos.GetPromoCode(ctx, id)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get promo code")
		return
	}

	utils.WriteJSON(w, PromoCodeEntityToJSON(promo), http.StatusOK)
}

// CreatePromoCode создаёт промокод.
// @Summary      Создать промокод
// @Tags         promo-codes
// @Accept       json
// @Param        promo  body      PromoCodeRequest  true  "Промокод"
// @Success      201  {object}  PromoCode
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Код уже существует"
// @Router       /admin/promo-codes [post]
func (h *AdminHandler) CreatePromoCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodePromo(w, r)
	if !ok {
		return
	}

	promo, err := h.promos.CreatePromoCode(ctx, entities.PromoCode{
		Code:           req.Code,
		DiscountAmount: req.DiscountAmount,
	})
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create promo code")
		return
	}

	utils.WriteJSON(w, PromoCodeEntityToJSON(promo), http.StatusCreated)
}

// UpdatePromoCode изменяет промокод.
// @Summary      Изменить промокод
// @Tags         promo-codes
// @Accept       json
// @Param        id     path      int               true  "ID промокода"
// @Param        promo  body      PromoCodeRequest  true  "Промокод"
// @Success      200  {object}  PromoCode
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Промокод не найден"
// @Failure      409  {object}  utils.ErrorResponse "Код уже существует"
// @Router       /admin/promo-codes/{id} [put]
func (h *AdminHandler) UpdatePromoCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	req, ok := h.decodePromo(w, r)
	if !ok {
		return
	}

	promo, err := h.promos.UpdatePromoCode(ctx, entities.PromoCode{
		ID:             id,
		Code:           req.Code,
		DiscountAmount: req.DiscountAmount,
	})
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to update promo code")
		return
	}

	utils.WriteJSON(w, PromoCodeEntityToJSON(promo), http.StatusOK)
}

// DeletePromoCode удаляет промокод. Заказы с этим промокодом сохраняют скидку.
// @Summary      Удалить промокод
// @Tags         promo-codes
// @Param        id   path  int  true  "ID промокода"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Промокод не найден"
// @Router       /admin/promo-codes/{id} [delete]
func (h *AdminHandler) DeletePromoCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.promos.DeletePromoCode(ctx, id); err != nil {
		writeError(ctx, h.logger, w, err, "failed to delete promo code")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeletePromoCodes удаляет несколько промокодов.
// @Summary      Удалить промокоды
// @Tags         promo-codes
// @Accept       json
// @Param        body  body      BulkDeleteRequest  true  "ID промокодов"
// @Success      200   {object}  BulkDeleteResponse
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /admin/promo-codes/bulk-delete [post]
func (h *AdminHandler) DeletePromoCodes(w http.ResponseWriter, r *http.Request) {
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

	n, err := h.promos.DeletePromoCodes(ctx, req.IDs)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to delete promo codes")
		return
	}

	utils.WriteJSON(w, BulkDeleteResponse{Deleted: n}, http.StatusOK)
}

func (h *AdminHandler) decodePromo(w http.ResponseWriter, r *http.Request) (PromoCodeRequest, bool) {
	var req PromoCodeRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return PromoCodeRequest{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return PromoCodeRequest{}, false
	}
	// decimal не поддерживается тегами валидатора
	if req.DiscountAmount.IsNegative() {
		utils.WriteFieldErrors(w, "", map[string]string{"discount_amount": "gte"})
		return PromoCodeRequest{}, false
	}
	return req, true
}
