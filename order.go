package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Fulfilment says how an order leaves the kitchen.
type Fulfilment string

const (
	FulfilmentPickup   Fulfilment = "pickup"
	FulfilmentDelivery Fulfilment = "delivery"
)

// OrderRequest is what the customer asks for.
type OrderRequest struct {
	Pizza    string `json:"pizza"`
	Size     string `json:"size"`
	Delivery bool   `json:"delivery"`
}

type Order struct {
	Id         string
	Pizza      Pizza
	Fulfilment Fulfilment

	PlacedAt    time.Time // The time when the order is placed by the customer
	ReadyAt     time.Time // The time when the pizza is prepared
	CompletedAt time.Time // The time when the pizza is delivered or picked up
}

func newOrder(p Pizza, delivery bool, now time.Time) *Order {
	o := &Order{
		Id:         uuid.NewString(),
		Pizza:      p,
		Fulfilment: FulfilmentPickup,
		PlacedAt:   now,
	}
	if delivery {
		o.Fulfilment = FulfilmentDelivery
	}
	return o
}

func (o Order) String() string {
	return fmt.Sprintf("Order ID: %v Pizza: %v Size: %v Fulfilment: %v PlacedAt: %v ReadyAt: %v CompletedAt: %v",
		o.Id, o.Pizza.Name, o.Pizza.Size, o.Fulfilment, o.PlacedAt.Format(time.RFC3339Nano), o.ReadyAt.Format(time.RFC3339Nano), o.CompletedAt.Format(time.RFC3339Nano))
}
