package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// StartDraft открывает форму нового заказа.
// @Summary      Новый черновик заказа
// @Tags         drafts
// @Success      201  {object}  Draft
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/drafts [post]
func (h *AdminHandler) StartDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	draft, err := h.drafts.StartDraft(ctx)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to start draft")
		return
	}

	utils.WriteJSON(w, DraftToJSON(draft), http.StatusCreated)
}

// EditDraft открывает форму редактирования заказа.
// @Summary      Черновик для редактирования заказа
// @Tags         drafts
// @Param        id   path      int  true  "ID заказа"
// @Success      201  {object}  Draft
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{id}/draft [post]
func (h *AdminHandler) EditDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	draft, err := h.drafts.EditDraft(ctx, id)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to open draft")
		return
	}

	utils.WriteJSON(w, DraftToJSON(draft), http.StatusCreated)
}

// GetDraft возвращает черновик.
// @Summary      Получить черновик
// @Tags         drafts
// @Param        draft_id  path      string  true  "ID черновика"
// @Success      200  {object}  Draft
// @Failure      404  {object}  utils.ErrorResponse "Черновик не найден"
// @Router       /admin/drafts/{draft_id} [get]
func (h *AdminHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	draft, err := h.drafts.GetDraft(ctx, chi.URLParam(r, "draft_id"))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get draft")
		return
	}

	utils.WriteJSON(w, DraftToJSON(draft), http.StatusOK)
}

// ChangeDraft применяет изменения полей формы.
// @Summary      Изменить поля черновика
// @Description  Суммы пересчитываются при смене товара, количества, промокода или скидки
// @Tags         drafts
// @Accept       json
// @Param        draft_id  path      string       true  "ID черновика"
// @Param        change    body      DraftChange  true  "Изменённые поля"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Черновик не найден"
// @Router       /admin/drafts/{draft_id} [patch]
func (h *AdminHandler) ChangeDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var change DraftChange
	if err := utils.DecodeBody(w, r, &change); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(change); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	draft, err := h.drafts.ApplyChange(ctx, chi.URLParam(r, "draft_id"), DraftChangeToIntake(change))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to change draft")
		return
	}

	utils.WriteJSON(w, DraftToJSON(draft), http.StatusOK)
}

// NextStep проверяет текущий шаг и переходит к следующему.
// @Summary      Следующий шаг
// @Tags         drafts
// @Param        draft_id  path      string  true  "ID черновика"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации шага"
// @Failure      404  {object}  utils.ErrorResponse "Черновик не найден"
// @Router       /admin/drafts/{draft_id}/next [post]
func (h *AdminHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	draft, err := h.drafts.Next(ctx, chi.URLParam(r, "draft_id"))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to move draft")
		return
	}

	utils.WriteJSON(w, DraftToJSON(draft), http.StatusOK)
}

// GoToStep переключает шаг без проверки.
// @Summary      Перейти к шагу
// @Tags         drafts
// @Param        draft_id  path      string  true  "ID черновика"
// @Param        step      path      string  true  "Шаг"  Enums(product, customer, payment)
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Неизвестный шаг"
// @Failure      404  {object}  utils.ErrorResponse "Черновик не найден"
// @Router       /admin/drafts/{draft_id}/goto/{step} [post]
func (h *AdminHandler) GoToStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	step, err := intake.ParseStep(chi.URLParam(r, "step"))
	if err != nil {
		utils.WriteFieldErrors(w, "", map[string]string{"step": "oneof"})
		return
	}

	draft, err := h.drafts.GoTo(ctx, chi.URLParam(r, "draft_id"), step)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to move draft")
		return
	}

	utils.WriteJSON(w, DraftToJSON(draft), http.StatusOK)
}

// SubmitDraft сохраняет заказ из черновика.
// @Summary      Сохранить заказ из черновика
// @Description  Проверяет все шаги. Новый заказ создаётся, существующий перезаписывается
// @Tags         drafts
// @Param        draft_id  path      string  true  "ID черновика"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Черновик не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/drafts/{draft_id}/submit [post]
func (h *AdminHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := h.drafts.SubmitDraft(ctx, chi.URLParam(r, "draft_id"))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to submit draft")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DiscardDraft удаляет черновик.
// @Summary      Удалить черновик
// @Tags         drafts
// @Param        draft_id  path  string  true  "ID черновика"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Черновик не найден"
// @Router       /admin/drafts/{draft_id} [delete]
func (h *AdminHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.drafts.DiscardDraft(ctx, chi.URLParam(r, "draft_id")); err != nil {
		writeError(ctx, h.logger, w, err, "failed to discard draft")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
