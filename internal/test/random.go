package test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/polkiloo/logidash/internal/domain/model"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomString returns a pseudo-random uppercase alphanumeric string of length n.
func RandomString(n int) string {
	if n <= 0 {
		n = 1
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphanumeric[randomIntn(len(alphanumeric))]
	}
	return string(buf)
}

// RandomOrder returns a valid order with a unique looking id.
func RandomOrder(status model.OrderStatus) model.Order {
	return model.Order{
		ID:       "#ORD-" + RandomString(8),
		Customer: "Customer " + RandomString(4),
		Location: "Berlin, DE",
		Product:  "Pallet " + RandomString(3),
		Quantity: 1 + randomIntn(9),
		Total:    float64(randomIntn(100000)) / 100,
		Status:   status,
		Date:     "Oct 12, 2023",
	}
}

// RandomShipment returns a shipment with a random tracking code.
func RandomShipment(status string) model.Shipment {
	return model.Shipment{
		ID:       "TRK-" + RandomString(7),
		Status:   status,
		Progress: randomIntn(101),
		Color:    "bg-primary",
	}
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
