package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/utils"
)

// GetProduct возвращает цену и размеры товара для формы заказа.
// @Summary      Получить товар
// @Tags         products
// @Param        id   path      int  true  "ID товара"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Router       /admin/products/{id} [get]
func (h *AdminHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	product, err := h.catalog.Product(ctx, id)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// UploadProof сохраняет изображение подтверждения оплаты.
// @Summary      Загрузить подтверждение оплаты
// @Description  Принимает изображение в поле file, возвращает путь для поля proof
// @Tags         uploads
// @Accept       mpfd
// @Param        file  formData  file  true  "Изображение"
// @Success      201  {object}  UploadResponse
// @Failure      400  {object}  utils.ErrorResponse "Файл не передан"
// @Failure      413  {object}  utils.ErrorResponse "Файл слишком большой"
// @Failure      415  {object}  utils.ErrorResponse "Неподдерживаемый тип файла"
// @Router       /admin/uploads/proof [post]
func (h *AdminHandler) UploadProof(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// запас на заголовки multipart
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	path, err := h.storage.SaveProof(ctx, file)
	if err != nil {
		uploadsTotal.WithLabelValues("rejected").Inc()
		writeError(ctx, h.logger, w, err, "failed to save proof")
		return
	}

	uploadsTotal.WithLabelValues("stored").Inc()
	utils.WriteJSON(w, UploadResponse{Path: path}, http.StatusCreated)
}
