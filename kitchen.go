// This file contains types, methods, and functions related to kitchen.

package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	StagePrepare = "prepare"
	StagePickup  = "pickup"

	prepareTemplate = "👨‍🍳 Prepared in {1} s"
	pickupTemplate  = "🏠 Picked up in {1} s!"
)

type Kitchen struct {
	PrepTime   time.Duration // How long a pizza takes to prepare
	PickupTime time.Duration // How long the customer spends at the counter

	sleep Sleeper
	opts  []StageOption
}

type KitchenConfig struct {
	PrepTime   time.Duration
	PickupTime time.Duration
	Sleep      Sleeper
	Options    []StageOption
}

// NewKitchen returns a new Kitchen-typed variable.
func NewKitchen(cfg KitchenConfig) *Kitchen {
	k := &Kitchen{
		PrepTime:   cfg.PrepTime,
		PickupTime: cfg.PickupTime,
		sleep:      cfg.Sleep,
		opts:       cfg.Options,
	}
	if k.sleep == nil {
		k.sleep = time.Sleep
	}
	return k
}

// Prepare cooks the pizza of an order and stamps ReadyAt.
func (k *Kitchen) Prepare(o *Order) error {
	prepare := Timed(StagePrepare, prepareTemplate, func() (time.Time, error) {
		log.Debug(fmt.Sprintf("Kitchen is working on order %v (%v, prep time: %v)", o.Id, o.Pizza.Name, k.PrepTime))
		k.sleep(k.PrepTime)
		return time.Now(), nil
	}, k.opts...)

	readyAt, err := prepare()
	if err != nil {
		return fmt.Errorf("prepare order %v: %w", o.Id, err)
	}
	o.ReadyAt = readyAt
	log.Debug(fmt.Sprintf("Order %v is ready.", o.Id))
	return nil
}

// Pickup hands a ready order to the customer at the counter.
func (k *Kitchen) Pickup(o *Order) error {
	pickup := Timed(StagePickup, pickupTemplate, func() (time.Time, error) {
		log.Debug(fmt.Sprintf("Customer is collecting order %v at the counter.", o.Id))
		k.sleep(k.PickupTime)
		return time.Now(), nil
	}, k.opts...)

	pickedUpAt, err := pickup()
	if err != nil {
		return fmt.Errorf("pickup order %v: %w", o.Id, err)
	}
	o.CompletedAt = pickedUpAt
	return nil
}
