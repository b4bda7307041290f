// This file contains type definition and methods related to the courier.

package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	StageDeliver = "deliver"

	deliverTemplate = "🚚 Delivered in {1} s!"
)

// Courier takes ready orders to the customer.
type Courier struct {
	TravelTime time.Duration // Time between leaving the kitchen and arriving at the door

	sleep Sleeper
	opts  []StageOption
}

// NewCourier constructs a new Courier.
func NewCourier(travelTime time.Duration, sleep Sleeper, opts ...StageOption) *Courier {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Courier{
		TravelTime: travelTime,
		sleep:      sleep,
		opts:       opts,
	}
}

// Deliver drives the order to the customer and stamps CompletedAt.
func (c *Courier) Deliver(o *Order) error {
	if o.ReadyAt.IsZero() {
		return fmt.Errorf("deliver order %v: order is not ready", o.Id)
	}

	deliver := Timed(StageDeliver, deliverTemplate, func() (time.Time, error) {
		log.Debug(fmt.Sprintf("Courier has been dispatched with order %v. ETA: %v", o.Id, c.TravelTime))
		c.sleep(c.TravelTime)
		return time.Now(), nil
	}, c.opts...)

	deliveredAt, err := deliver()
	if err != nil {
		return fmt.Errorf("deliver order %v: %w", o.Id, err)
	}
	o.CompletedAt = deliveredAt
	log.Debug(fmt.Sprintf("Order %v has been delivered.", o.Id))
	return nil
}
