package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Customer struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	PostCode string `json:"post_code"`
}

type Checkout struct {
	ProductID   int64    `json:"product_id"`
	SizeID      int64    `json:"size_id"`
	Quantity    int      `json:"quantity"`
	PromoCodeID *int64   `json:"promo_code_id,omitempty"`
	Customer    Customer `json:"customer"`
	Proof       string   `json:"proof"`
}

var cities = []string{"Jakarta", "Bandung", "Surabaya", "Medan", "Denpasar"}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// generateCheckout ссылается на товары и размеры из демо-данных,
// часть сообщений намеренно невалидна и должна попасть в DLQ.
func generateCheckout() Checkout {
	c := Checkout{
		ProductID: int64(rand.Intn(3) + 1),
		SizeID:    int64(rand.Intn(6) + 1),
		Quantity:  rand.Intn(3) + 1,
		Customer: Customer{
			Name:     "Customer " + randomString(5),
			Phone:    fmt.Sprintf("08%010d", rand.Intn(1_000_000_000)),
			Email:    fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
			Address:  fmt.Sprintf("Jl. Sudirman %d", rand.Intn(200)),
			City:     cities[rand.Intn(len(cities))],
			PostCode: fmt.Sprintf("%05d", rand.Intn(99999)),
		},
		Proof: "proofs/" + randomString(12) + ".png",
	}
	if rand.Intn(3) == 0 {
		promoID := int64(1)
		c.PromoCodeID = &promoID
	}
	if rand.Intn(10) == 0 {
		c.Customer.Email = "broken"
	}
	return c
}

func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP("localhost:9092"),
		Topic: "storefront-orders",
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			checkout := generateCheckout()
			data, _ := json.Marshal(checkout)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(checkout.Customer.Phone), Value: data}); err != nil {
				log.Println("failed to publish checkout:", err)
				continue
			}
			log.Println("checkout generated", checkout.Customer.Name)
		case <-ctx.Done():
			return
		}
	}
}
