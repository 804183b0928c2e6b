package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// FrontHandler serves the public read-only catalog.
type FrontHandler struct {
	logger  *slog.Logger
	catalog Catalog
}

func NewFrontHandler(logger *slog.Logger, catalog Catalog) *FrontHandler {
	return &FrontHandler{
		logger:  logger.With(slog.String("handler", "front")),
		catalog: catalog,
	}
}

func (h *FrontHandler) Init(r chi.Router) {
	r.Get("/front", h.FrontPage)
	r.Get("/front/search", h.Search)
}

// FrontPage возвращает данные главной страницы.
// @Summary      Главная страница
// @Description  Категории, до четырёх популярных товаров и новинки
// @Tags         front
// @Success      200  {object}  FrontPage
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /front [get]
func (h *FrontHandler) FrontPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.catalog.FrontPage(ctx)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to load front page")
		return
	}

	utils.WriteJSON(w, FrontPageToJSON(data), http.StatusOK)
}

// Search ищет товары по названию.
// @Summary      Поиск товаров
// @Tags         front
// @Param        keywords  query     string  false  "Часть названия"
// @Success      200  {array}   Product
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /front/search [get]
func (h *FrontHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalog.SearchProducts(ctx, r.URL.Query().Get("keywords"))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to search products")
		return
	}

	utils.WriteJSON(w, ProductsToJSON(products), http.StatusOK)
}
