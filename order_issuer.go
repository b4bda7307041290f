package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// OrderPlacer is anything that can take an order. *Pizzeria satisfies it.
type OrderPlacer interface {
	Order(req OrderRequest) (*Order, error)
}

type orderIssuer struct {
	Count    int            // Max number of orders to issue
	requests []OrderRequest // Orders read from the source file
}

// NewOrderIssuer reads orders from a JSON file. A positive limit caps how
// many of them are issued.
func NewOrderIssuer(sourceFile string, limit int) (*orderIssuer, error) {
	requests, err := extractOrders(sourceFile)
	if err != nil {
		return nil, err
	}

	oi := &orderIssuer{requests: requests, Count: len(requests)}
	if limit > 0 && limit < oi.Count {
		oi.Count = limit
	}
	return oi, nil
}

// Start places the orders one at a time, in file order. Pizzas that are not
// on the menu are skipped; any other failure stops the run.
func (oi *orderIssuer) Start(placer OrderPlacer) ([]*Order, error) {
	log.Debug("Order issuer will now start issuing orders.")

	var placed []*Order
	for i := 0; i < oi.Count; i++ {
		req := oi.requests[i]
		log.Debug(fmt.Sprintf("Order issuer sends order for %v (Completion: %v %%)", req.Pizza, 100*(i+1)/oi.Count))

		o, err := placer.Order(req)
		if errors.Is(err, ErrPizzaNotFound) {
			continue
		}
		if err != nil {
			return placed, fmt.Errorf("order %v (%v): %w", i+1, req.Pizza, err)
		}
		placed = append(placed, o)
	}

	log.Debug("Order issuer: all orders have been sent")
	return placed, nil
}

// extractOrders reads the user-specified JSON file into a slice of OrderRequest.
func extractOrders(sourceFile string) ([]OrderRequest, error) {
	requests := []OrderRequest{}

	data, err := os.ReadFile(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open orders data json file: %w", err)
	}

	if err := json.Unmarshal(data, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode JSON order data: %w", err)
	}

	return requests, nil
}
