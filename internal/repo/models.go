package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
	Icon string `db:"icon"`
}

type Product struct {
	ID         int64           `db:"id"`
	CategoryID int64           `db:"category_id"`
	Name       string          `db:"name"`
	Slug       string          `db:"slug"`
	Thumbnail  string          `db:"thumbnail"`
	About      string          `db:"about"`
	Price      decimal.Decimal `db:"price"`
	IsPopular  bool            `db:"is_popular"`
	CreatedAt  time.Time       `db:"created_at"`
}

type Size struct {
	ID     int64  `db:"id"`
	ShoeID int64  `db:"shoe_id"`
	Size   string `db:"size"`
}

type PromoCode struct {
	ID             int64           `db:"id"`
	Code           string          `db:"code"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type Order struct {
	ID               int64           `db:"id"`
	BookingTrxID     string          `db:"booking_trx_id"`
	ShoeID           int64           `db:"shoe_id"`
	ShoeSize         int64           `db:"shoe_size"`
	Quantity         int             `db:"quantity"`
	Price            decimal.Decimal `db:"price"`
	SubTotalAmount   decimal.Decimal `db:"sub_total_amount"`
	DiscountAmount   decimal.Decimal `db:"discount_amount"`
	GrandTotalAmount decimal.Decimal `db:"grand_total_amount"`
	PromoCodeID      sql.NullInt64   `db:"promo_code_id"`
	Name             string          `db:"name"`
	Phone            string          `db:"phone"`
	Email            string          `db:"email"`
	Address          string          `db:"address"`
	City             string          `db:"city"`
	PostCode         string          `db:"post_code"`
	IsPaid           bool            `db:"is_paid"`
	Proof            string          `db:"proof"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type OrderSummary struct {
	ID               int64           `db:"id"`
	BookingTrxID     string          `db:"booking_trx_id"`
	Name             string          `db:"name"`
	ShoeID           int64           `db:"shoe_id"`
	ShoeName         string          `db:"shoe_name"`
	ShoeThumbnail    string          `db:"shoe_thumbnail"`
	GrandTotalAmount decimal.Decimal `db:"grand_total_amount"`
	IsPaid           bool            `db:"is_paid"`
	CreatedAt        time.Time       `db:"created_at"`
}

func CategoryToEntity(c Category) entities.Category {
	return entities.Category{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
		Icon: c.Icon,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Slug:       p.Slug,
		Thumbnail:  p.Thumbnail,
		About:      p.About,
		Price:      p.Price,
		IsPopular:  p.IsPopular,
		CreatedAt:  p.CreatedAt,
	}
}

func SizeToEntity(s Size) entities.Size {
	return entities.Size{ID: s.ID, Label: s.Size}
}

func PromoCodeToEntity(p PromoCode) entities.PromoCode {
	return entities.PromoCode{
		ID:             p.ID,
		Code:           p.Code,
		DiscountAmount: p.DiscountAmount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:           o.ID,
		BookingTrxID: o.BookingTrxID,
		ProductID:    o.ShoeID,
		SizeID:       o.ShoeSize,
		Quantity:     o.Quantity,
		Price:        o.Price,
		SubTotal:     o.SubTotalAmount,
		Discount:     o.DiscountAmount,
		GrandTotal:   o.GrandTotalAmount,
		PromoCodeID:  nullInt64ToPtr(o.PromoCodeID),
		Customer: entities.Customer{
			Name:     o.Name,
			Phone:    o.Phone,
			Email:    o.Email,
			Address:  o.Address,
			City:     o.City,
			PostCode: o.PostCode,
		},
		Payment: entities.Payment{
			IsPaid: o.IsPaid,
			Proof:  o.Proof,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func OrderSummaryToEntity(o OrderSummary) entities.OrderSummary {
	return entities.OrderSummary{
		ID:               o.ID,
		BookingTrxID:     o.BookingTrxID,
		Name:             o.Name,
		ProductID:        o.ShoeID,
		ProductName:      o.ShoeName,
		ProductThumbnail: o.ShoeThumbnail,
		GrandTotal:       o.GrandTotalAmount,
		IsPaid:           o.IsPaid,
		CreatedAt:        o.CreatedAt,
	}
}

func nullInt64ToPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func ptrToNullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}
