package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/service"
	"github.com/shopspring/decimal"
)

// Customer представляет данные покупателя
type Customer struct {
	Name     string `json:"name" validate:"max=255"`
	Phone    string `json:"phone" validate:"max=255"`
	Email    string `json:"email" validate:"max=255"`
	Address  string `json:"address" validate:"max=255"`
	City     string `json:"city" validate:"max=255"`
	PostCode string `json:"post_code" validate:"max=255"`
}

// OrderForm содержит все три шага формы заказа
type OrderForm struct {
	ProductID   int64            `json:"product_id" validate:"gte=0"`
	SizeID      int64            `json:"size_id" validate:"gte=0"`
	Quantity    int              `json:"quantity"`
	PromoCodeID *int64           `json:"promo_code_id,omitempty" validate:"omitempty,gte=0"`
	Discount    *decimal.Decimal `json:"discount,omitempty" swaggertype:"string" example:"50000"`
	Customer    Customer         `json:"customer"`
	IsPaid      bool             `json:"is_paid"`
	Proof       string           `json:"proof" validate:"max=255"`
}

// CheckoutCustomer is the buyer of a storefront checkout. Unlike the admin
// form nothing fills the gaps later, so every field is required.
type CheckoutCustomer struct {
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,max=255,email"`
	Address  string `json:"address" validate:"required,max=255"`
	City     string `json:"city" validate:"required,max=255"`
	PostCode string `json:"post_code" validate:"required,max=255"`
}

// CheckoutMessage is a storefront checkout read from the intake topic.
type CheckoutMessage struct {
	ProductID   int64            `json:"product_id" validate:"required"`
	SizeID      int64            `json:"size_id" validate:"required"`
	Quantity    int              `json:"quantity" validate:"required,gte=1"`
	PromoCodeID *int64           `json:"promo_code_id,omitempty" validate:"omitempty,gt=0"`
	Customer    CheckoutCustomer `json:"customer"`
	Proof       string           `json:"proof" validate:"required,max=255"`
}

// Order представляет заказ
type Order struct {
	ID           int64           `json:"id"`
	BookingTrxID string          `json:"booking_trx_id"`
	ProductID    int64           `json:"product_id"`
	SizeID       int64           `json:"size_id"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"500000"`
	SubTotal     decimal.Decimal `json:"sub_total_amount" swaggertype:"string" example:"1000000"`
	Discount     decimal.Decimal `json:"discount_amount" swaggertype:"string" example:"50000"`
	GrandTotal   decimal.Decimal `json:"grand_total_amount" swaggertype:"string" example:"950000"`
	PromoCodeID  *int64          `json:"promo_code_id"`
	Customer     Customer        `json:"customer"`
	IsPaid       bool            `json:"is_paid"`
	Proof        string          `json:"proof"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OrderSummary представляет строку таблицы заказов
type OrderSummary struct {
	ID               int64           `json:"id"`
	BookingTrxID     string          `json:"booking_trx_id"`
	Name             string          `json:"name"`
	ProductID        int64           `json:"product_id"`
	ProductName      string          `json:"product_name"`
	ProductThumbnail string          `json:"product_thumbnail"`
	GrandTotal       decimal.Decimal `json:"grand_total_amount" swaggertype:"string"`
	IsPaid           bool            `json:"is_paid"`
	CreatedAt        time.Time       `json:"created_at"`
}

type Size struct {
	ID    int64  `json:"id"`
	Label string `json:"size"`
}

// Draft представляет незавершённую форму заказа
type Draft struct {
	ID           string          `json:"id"`
	Mode         string          `json:"mode" enums:"create,edit"`
	Step         string          `json:"step" enums:"product,customer,payment"`
	OrderID      int64           `json:"order_id,omitempty"`
	BookingTrxID string          `json:"booking_trx_id"`
	ProductID    int64           `json:"product_id"`
	Sizes        []Size          `json:"sizes"`
	SizeID       int64           `json:"size_id"`
	Quantity     *int            `json:"quantity"`
	Price        decimal.Decimal `json:"price" swaggertype:"string"`
	SubTotal     decimal.Decimal `json:"sub_total_amount" swaggertype:"string"`
	Discount     decimal.Decimal `json:"discount_amount" swaggertype:"string"`
	GrandTotal   decimal.Decimal `json:"grand_total_amount" swaggertype:"string"`
	PromoCodeID  *int64          `json:"promo_code_id"`
	Customer     Customer        `json:"customer"`
	IsPaid       bool            `json:"is_paid"`
	Proof        string          `json:"proof"`
}

// DraftChange содержит изменённые поля формы, отсутствующие поля не меняются
type DraftChange struct {
	ProductID   *int64           `json:"product_id,omitempty" validate:"omitempty,gte=0"`
	SizeID      *int64           `json:"size_id,omitempty" validate:"omitempty,gte=0"`
	Quantity    *int             `json:"quantity,omitempty"`
	PromoCodeID *int64           `json:"promo_code_id,omitempty" validate:"omitempty,gte=0"`
	Discount    *decimal.Decimal `json:"discount,omitempty" swaggertype:"string"`
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Phone       *string          `json:"phone,omitempty" validate:"omitempty,max=255"`
	Email       *string          `json:"email,omitempty" validate:"omitempty,max=255"`
	Address     *string          `json:"address,omitempty" validate:"omitempty,max=255"`
	City        *string          `json:"city,omitempty" validate:"omitempty,max=255"`
	PostCode    *string          `json:"post_code,omitempty" validate:"omitempty,max=255"`
	IsPaid      *bool            `json:"is_paid,omitempty"`
	Proof       *string          `json:"proof,omitempty" validate:"omitempty,max=255"`
}

// PromoCode представляет промокод
type PromoCode struct {
	ID             int64           `json:"id"`
	Code           string          `json:"code"`
	DiscountAmount decimal.Decimal `json:"discount_amount" swaggertype:"string"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PromoCodeRequest struct {
	Code           string          `json:"code" validate:"required,max=255"`
	DiscountAmount decimal.Decimal `json:"discount_amount" swaggertype:"string" example:"50000"`
}

type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
}

// Product представляет товар (пару обуви)
type Product struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
	Thumbnail  string          `json:"thumbnail"`
	About      string          `json:"about"`
	Price      decimal.Decimal `json:"price" swaggertype:"string"`
	IsPopular  bool            `json:"is_popular"`
	Sizes      []Size          `json:"sizes,omitempty"`
}

type FrontPage struct {
	Categories      []Category `json:"categories"`
	PopularProducts []Product  `json:"popular_products"`
	NewProducts     []Product  `json:"new_products"`
}

type UploadResponse struct {
	Path string `json:"path"`
}

func CustomerJSONToEntity(c Customer) entities.Customer {
	return entities.Customer{
		Name:     c.Name,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
		City:     c.City,
		PostCode: c.PostCode,
	}
}

func CustomerEntityToJSON(c entities.Customer) Customer {
	return Customer{
		Name:     c.Name,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
		City:     c.City,
		PostCode: c.PostCode,
	}
}

func OrderFormToIntake(f OrderForm) intake.Form {
	return intake.Form{
		ProductID:   f.ProductID,
		SizeID:      f.SizeID,
		Quantity:    f.Quantity,
		PromoCodeID: f.PromoCodeID,
		Discount:    f.Discount,
		Customer:    CustomerJSONToEntity(f.Customer),
		Payment: entities.Payment{
			IsPaid: f.IsPaid,
			Proof:  f.Proof,
		},
	}
}

// CheckoutToIntake converts a storefront checkout. Storefront orders are
// never paid on arrival and never carry a manual discount.
func CheckoutToIntake(m CheckoutMessage) intake.Form {
	return intake.Form{
		ProductID:   m.ProductID,
		SizeID:      m.SizeID,
		Quantity:    m.Quantity,
		PromoCodeID: m.PromoCodeID,
		Customer:    CustomerJSONToEntity(Customer(m.Customer)),
		Payment:     entities.Payment{Proof: m.Proof},
	}
}

func DraftChangeToIntake(c DraftChange) intake.Change {
	return intake.Change{
		ProductID:   c.ProductID,
		SizeID:      c.SizeID,
		Quantity:    c.Quantity,
		PromoCodeID: c.PromoCodeID,
		Discount:    c.Discount,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		City:        c.City,
		PostCode:    c.PostCode,
		IsPaid:      c.IsPaid,
		Proof:       c.Proof,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:           o.ID,
		BookingTrxID: o.BookingTrxID,
		ProductID:    o.ProductID,
		SizeID:       o.SizeID,
		Quantity:     o.Quantity,
		Price:        o.Price,
		SubTotal:     o.SubTotal,
		Discount:     o.Discount,
		GrandTotal:   o.GrandTotal,
		PromoCodeID:  o.PromoCodeID,
		Customer:     CustomerEntityToJSON(o.Customer),
		IsPaid:       o.Payment.IsPaid,
		Proof:        o.Payment.Proof,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func OrderSummariesToJSON(orders []entities.OrderSummary) []OrderSummary {
	result := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderSummary{
			ID:               o.ID,
			BookingTrxID:     o.BookingTrxID,
			Name:             o.Name,
			ProductID:        o.ProductID,
			ProductName:      o.ProductName,
			ProductThumbnail: o.ProductThumbnail,
			GrandTotal:       o.GrandTotal,
			IsPaid:           o.IsPaid,
			CreatedAt:        o.CreatedAt,
		})
	}
	return result
}

func SizesToJSON(sizes []entities.Size) []Size {
	if sizes == nil {
		return nil
	}
	result := make([]Size, 0, len(sizes))
	for _, s := range sizes {
		result = append(result, Size{ID: s.ID, Label: s.Label})
	}
	return result
}

func DraftToJSON(d service.Draft) Draft {
	sizes := SizesToJSON(d.Sizes)
	if sizes == nil {
		sizes = []Size{}
	}
	return Draft{
		ID:           d.ID,
		Mode:         string(d.Mode),
		Step:         string(d.Step),
		OrderID:      d.OrderID,
		BookingTrxID: d.BookingTrxID,
		ProductID:    d.ProductID,
		Sizes:        sizes,
		SizeID:       d.SizeID,
		Quantity:     d.Quantity,
		Price:        d.Price,
		SubTotal:     d.SubTotal,
		Discount:     d.Discount,
		GrandTotal:   d.GrandTotal,
		PromoCodeID:  d.PromoCodeID,
		Customer:     CustomerEntityToJSON(d.Customer),
		IsPaid:       d.Payment.IsPaid,
		Proof:        d.Payment.Proof,
	}
}

func PromoCodeEntityToJSON(p entities.PromoCode) PromoCode {
	return PromoCode{
		ID:             p.ID,
		Code:           p.Code,
		DiscountAmount: p.DiscountAmount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func PromoCodesToJSON(promos []entities.PromoCode) []PromoCode {
	result := make([]PromoCode, 0, len(promos))
	for _, p := range promos {
		result = append(result, PromoCodeEntityToJSON(p))
	}
	return result
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Slug:       p.Slug,
		Thumbnail:  p.Thumbnail,
		About:      p.About,
		Price:      p.Price,
		IsPopular:  p.IsPopular,
		Sizes:      SizesToJSON(p.Sizes),
	}
}

func ProductsToJSON(products []entities.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductEntityToJSON(p))
	}
	return result
}

func FrontPageToJSON(data entities.FrontPageData) FrontPage {
	categories := make([]Category, 0, len(data.Categories))
	for _, c := range data.Categories {
		categories = append(categories, Category{ID: c.ID, Name: c.Name, Slug: c.Slug, Icon: c.Icon})
	}
	return FrontPage{
		Categories:      categories,
		PopularProducts: ProductsToJSON(data.PopularProducts),
		NewProducts:     ProductsToJSON(data.NewProducts),
	}
}
